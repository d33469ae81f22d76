package models

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// AllocationRule is the default allocation for invoices of suppliers that match
// the glob pattern in Match.
type AllocationRule struct {
	DefaultModel
	Priority      uint
	Match         string
	Company       string
	Brand         string
	Department    string
	Subdepartment string
}

func (r AllocationRule) Self() string {
	return "Allocation Rule"
}

// BeforeSave trims whitespace and verifies that the rule can match and allocate.
func (r *AllocationRule) BeforeSave(_ *gorm.DB) (err error) {
	r.Match = strings.TrimSpace(r.Match)
	r.Company = strings.TrimSpace(r.Company)
	r.Brand = strings.TrimSpace(r.Brand)
	r.Department = strings.TrimSpace(r.Department)
	r.Subdepartment = strings.TrimSpace(r.Subdepartment)

	return r.Validate()
}

// Validate checks that the rule can be stored.
func (r AllocationRule) Validate() error {
	if r.Match == "" {
		return ErrAllocationRuleMatchEmpty
	}

	if r.Company == "" {
		return ErrAllocationRuleCompanyEmpty
	}

	return nil
}

// Matches reports if the supplier matches the pattern of the rule.
// Matching is case insensitive.
func (r AllocationRule) Matches(supplier string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(supplier))
}

// MatchingRule returns the rule with the lowest priority value that matches the
// supplier. If no rule matches, ok is false.
func MatchingRule(db *gorm.DB, supplier string) (rule AllocationRule, ok bool, err error) {
	var rules []AllocationRule
	err = db.Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return AllocationRule{}, false, err
	}

	for _, r := range rules {
		if r.Matches(supplier) {
			return r, true, nil
		}
	}

	return AllocationRule{}, false, nil
}
