package reservation

import (
	"errors"
	"fmt"
	"regexp"

	"rincon-reservas/internal/domain/pricing"
)

var ErrUnknownCategory = errors.New("unknown reservation category")

type Category string

const (
	CategoryGeneral     Category = "general"
	CategorySmallGroups Category = "small_groups"
)

func (c Category) String() string {
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryGeneral, CategorySmallGroups:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

type Status string

const (
	StatusPendingVerification Status = "pending_verification"
)

func (s Status) String() string {
	return string(s)
}

// RuleSet holds the validation bounds and patterns of one reservation category.
type RuleSet struct {
	Category       Category
	MaxEntries     int
	MaxExempt      int // 0 means exempt visitors only count toward MaxTotalPeople
	MaxTotalPeople int
	CedulaPattern  *regexp.Regexp
	CedulaExample  string
	EmailPattern   *regexp.Regexp
	Areas          pricing.Catalog
}

var (
	phonePattern = regexp.MustCompile(`^(\+58|0)?(4\d{2}|2\d{2})-?\d{7}$`)

	generalRules = RuleSet{
		Category:       CategoryGeneral,
		MaxEntries:     40,
		MaxTotalPeople: 40,
		CedulaPattern:  regexp.MustCompile(`^\d{7,8}$`),
		CedulaExample:  "12345678",
		EmailPattern:   regexp.MustCompile(`\S+@\S+\.\S+`),
	}

	smallGroupRules = RuleSet{
		Category:       CategorySmallGroups,
		MaxEntries:     50,
		MaxExempt:      10,
		MaxTotalPeople: 60,
		CedulaPattern:  regexp.MustCompile(`(?i)^[VEJ]-?\d{7,8}$`),
		CedulaExample:  "V-12345678",
		EmailPattern:   regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	}
)

func Rules(c Category) (RuleSet, error) {
	var rs RuleSet
	switch c {
	case CategoryGeneral:
		rs = generalRules
		rs.Areas = pricing.GeneralAreas()
	case CategorySmallGroups:
		rs = smallGroupRules
		rs.Areas = pricing.SmallGroupAreas()
	default:
		return RuleSet{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return rs, nil
}

func MustRules(c Category) RuleSet {
	rs, err := Rules(c)
	if err != nil {
		panic(err)
	}
	return rs
}
