package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	netmail "net/mail"
	"net/textproto"
	"strings"
	"time"

	"rincon-reservas/internal/pkg/errs"
	"rincon-reservas/internal/usecase/commands"
)

const base64LineLen = 76

// BuildMessage renders msg as a multipart/mixed RFC 5322 message with an HTML
// body followed by any attachments.
func BuildMessage(fromName, fromAddr string, msg commands.EmailMessage) ([]byte, error) {
	if len(msg.To) == 0 {
		return nil, errs.New("email has no recipients")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	from := netmail.Address{Name: fromName, Address: fromAddr}
	header := []struct{ key, value string }{
		{"From", from.String()},
		{"To", strings.Join(msg.To, ", ")},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", fmt.Sprintf("multipart/mixed; boundary=%q", mw.Boundary())},
	}
	var head bytes.Buffer
	for _, h := range header {
		fmt.Fprintf(&head, "%s: %s\r\n", h.key, h.value)
	}
	head.WriteString("\r\n")

	htmlPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/html; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return nil, errs.Wrap(err, "create html part")
	}
	qp := quotedprintable.NewWriter(htmlPart)
	if _, err := qp.Write([]byte(msg.HTML)); err != nil {
		return nil, errs.Wrap(err, "write html part")
	}
	if err := qp.Close(); err != nil {
		return nil, errs.Wrap(err, "close html part")
	}

	for _, a := range msg.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {mime.FormatMediaType(contentType, map[string]string{"name": a.Filename})},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename})},
			"Content-Transfer-Encoding": {"base64"},
		})
		if err != nil {
			return nil, errs.Wrapf(err, "create attachment part %s", a.Filename)
		}
		if _, err := part.Write(wrapBase64(a.Content)); err != nil {
			return nil, errs.Wrapf(err, "write attachment %s", a.Filename)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, errs.Wrap(err, "close multipart message")
	}

	return append(head.Bytes(), buf.Bytes()...), nil
}

func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)
	var out bytes.Buffer
	for len(encoded) > base64LineLen {
		out.WriteString(encoded[:base64LineLen])
		out.WriteString("\r\n")
		encoded = encoded[base64LineLen:]
	}
	out.WriteString(encoded)
	out.WriteString("\r\n")
	return out.Bytes()
}
