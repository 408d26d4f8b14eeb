package model

import "github.com/shopspring/decimal"

// Event is a campus event shown in the events browser.
type Event struct {
	ID          string
	Name        string
	Date        string
	Time        string
	Location    string
	Category    string
	HasFreeFood bool
}

// Alert is a campus announcement.
type Alert struct {
	ID      string
	Title   string
	Message string
	Urgent  bool
	Date    string
}

// Contact is an essential campus phone number.
type Contact struct {
	ID      string
	Service string
	Phone   string
}

// Subscription is a recurring monthly charge listed in the subscription audit.
type Subscription struct {
	ID                 string
	Name               string
	Amount             decimal.Decimal
	HasStudentDiscount bool
}
