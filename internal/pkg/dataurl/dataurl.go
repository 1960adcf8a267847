package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrMalformed = errors.New("malformed data URL")

func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode accepts a data URL or a bare base64 payload.
func Decode(s string) (mimeType string, data []byte, err error) {
	payload := strings.TrimSpace(s)
	if strings.HasPrefix(payload, "data:") {
		header, body, ok := strings.Cut(payload, ",")
		if !ok {
			return "", nil, ErrMalformed
		}
		mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		payload = body
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrMalformed, err)
	}
	return mimeType, data, nil
}
