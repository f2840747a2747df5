package models

import "strings"

// ConnectionStatus describes the viewer's relationship with an alumni profile.
type ConnectionStatus string

const (
	ConnectionNone      ConnectionStatus = "none"
	ConnectionPending   ConnectionStatus = "pending"
	ConnectionConnected ConnectionStatus = "connected"
)

// EmploymentType is the kind of position a job posting offers.
type EmploymentType string

const (
	FullTime   EmploymentType = "Full-time"
	PartTime   EmploymentType = "Part-time"
	Contract   EmploymentType = "Contract"
	Internship EmploymentType = "Internship"
	Freelance  EmploymentType = "Freelance"
)

// EmploymentTypes lists every employment type in display order.
var EmploymentTypes = []EmploymentType{FullTime, PartTime, Contract, Internship, Freelance}

// ParseEmploymentType accepts the display form ("Full-time") or the facet
// option id ("full-time") in any case.
func ParseEmploymentType(s string) (EmploymentType, bool) {
	for _, t := range EmploymentTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// RSVPStatus is the viewer's response to an event invitation.
type RSVPStatus string

const (
	RSVPNone       RSVPStatus = ""
	RSVPGoing      RSVPStatus = "going"
	RSVPInterested RSVPStatus = "interested"
	RSVPNotGoing   RSVPStatus = "not-going"
)

// ParseRSVP converts user input to an RSVPStatus. "none" clears the response.
func ParseRSVP(s string) (RSVPStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return RSVPNone, true
	case "going":
		return RSVPGoing, true
	case "interested":
		return RSVPInterested, true
	case "not-going", "notgoing", "not_going":
		return RSVPNotGoing, true
	}
	return "", false
}

// StringPtr is a helper for building records with optional text fields.
func StringPtr(s string) *string { return &s }
