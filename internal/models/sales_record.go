package models

import "time"

type Shift string

const (
	ShiftMorning   Shift = "morning"   // sabah
	ShiftAfternoon Shift = "afternoon" // öğle
	ShiftEvening   Shift = "evening"   // akşam
)

// Shifts: sabit vardiya sırası, raporlarda hep bu sırayla gösterilir
var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}

// SalesRecord: bir güne ait satış kaydı. Tarih başına en fazla bir kayıt
// bulunur; aynı tarihe yeniden kayıt girilirse eskisinin üzerine yazılır.
type SalesRecord struct {
	Date             time.Time // gün bazlı
	Morning          float64   // sabah vardiyası ciro (EUR)
	Afternoon        float64   // öğle vardiyası ciro (EUR)
	Evening          float64   // akşam vardiyası ciro (EUR)
	Total            float64   // vardiyaların toplamı, her yazmada yeniden hesaplanır
	MorningTickets   int
	AfternoonTickets int
	EveningTickets   int
	Note             string // opsiyonel açıklama
}

// Recompute: Total alanı dosyadan gelen değere asla güvenilmez,
// her yükleme ve her yazmada vardiyalardan yeniden hesaplanır.
func (r *SalesRecord) Recompute() {
	r.Total = r.Morning + r.Afternoon + r.Evening
}

func (r *SalesRecord) ShiftAmount(s Shift) float64 {
	switch s {
	case ShiftMorning:
		return r.Morning
	case ShiftAfternoon:
		return r.Afternoon
	case ShiftEvening:
		return r.Evening
	}
	return 0
}

func (r *SalesRecord) ShiftTickets(s Shift) int {
	switch s {
	case ShiftMorning:
		return r.MorningTickets
	case ShiftAfternoon:
		return r.AfternoonTickets
	case ShiftEvening:
		return r.EveningTickets
	}
	return 0
}

// TotalTickets: günün toplam fiş sayısı
func (r *SalesRecord) TotalTickets() int {
	return r.MorningTickets + r.AfternoonTickets + r.EveningTickets
}
