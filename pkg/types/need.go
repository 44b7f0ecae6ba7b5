package types

import (
	"time"
)

type NeedStatus string

const (
	NeedStatusOpen     NeedStatus = "open"
	NeedStatusResolved NeedStatus = "resolved"
)

func (s NeedStatus) Valid() bool {
	switch s {
	case NeedStatusOpen, NeedStatusResolved:
		return true
	}
	return false
}

type NeedCity string

const (
	NeedCityCasablanca NeedCity = "Casablanca"
	NeedCityAgadir     NeedCity = "Agadir"
	NeedCityMarrakech  NeedCity = "Marrakech"
	NeedCityRabat      NeedCity = "Rabat"
	NeedCityFes        NeedCity = "Fès"
	NeedCityTanger     NeedCity = "Tanger"
	NeedCityOujda      NeedCity = "Oujda"
	NeedCityMeknes     NeedCity = "Meknès"
	NeedCityTetouan    NeedCity = "Tétouan"
	NeedCityLagouira   NeedCity = "Lagouira"
)

func Cities() []NeedCity {
	return []NeedCity{
		NeedCityCasablanca,
		NeedCityAgadir,
		NeedCityMarrakech,
		NeedCityRabat,
		NeedCityFes,
		NeedCityTanger,
		NeedCityOujda,
		NeedCityMeknes,
		NeedCityTetouan,
		NeedCityLagouira,
	}
}

func (c NeedCity) Valid() bool {
	for _, city := range Cities() {
		if c == city {
			return true
		}
	}
	return false
}

type NeedCategory string

const (
	NeedCategoryCleaning       NeedCategory = "Cleaning"
	NeedCategorySchoolAid      NeedCategory = "School Aid"
	NeedCategoryUrgentDonation NeedCategory = "Urgent Donation"
	NeedCategoryOther          NeedCategory = "Other"
)

func Categories() []NeedCategory {
	return []NeedCategory{
		NeedCategoryCleaning,
		NeedCategorySchoolAid,
		NeedCategoryUrgentDonation,
		NeedCategoryOther,
	}
}

func (c NeedCategory) Valid() bool {
	for _, category := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

const (
	NeedTitleMaxLen       = 120
	NeedDescriptionMaxLen = 2000
)

type Need struct {
	ID              string       `db:"id"`
	Title           string       `db:"title"`
	Description     string       `db:"description"`
	City            NeedCity     `db:"city"`
	Category        NeedCategory `db:"category"`
	WhatsappNumber  string       `db:"whatsapp_number"`
	Status          NeedStatus   `db:"status"`
	CreatedByUserID string       `db:"created_by_user_id"`
	CreatedAt       time.Time    `db:"created_at"`
}

// NeedWithCount is the listing projection: a Need joined with the number
// of users committed to it.
type NeedWithCount struct {
	Need
	ParticipationCount int `db:"participation_count"`
}

// ParticipatedNeed is the reduced projection shown on a user's dashboard
// for needs they joined.
type ParticipatedNeed struct {
	ID             string       `db:"id"`
	Title          string       `db:"title"`
	City           NeedCity     `db:"city"`
	Category       NeedCategory `db:"category"`
	Status         NeedStatus   `db:"status"`
	WhatsappNumber string       `db:"whatsapp_number"`
}

// NeedFilters narrows the public listing. Values outside the closed city
// and category sets are ignored rather than rejected.
type NeedFilters struct {
	City     string
	Category string
}
