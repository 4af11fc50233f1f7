package domain

import (
	"strings" // Case-insensitive category matching
	"time"    // Timestamps
)

// JenisKelamin values accepted for a child's sex
const (
	LakiLaki  = "laki-laki"
	Perempuan = "perempuan"
)

// StatusGiziCategories is the fixed, ordered list of nutrition-status
// categories reported by the chart endpoint.
var StatusGiziCategories = []string{
	"Gizi Buruk",
	"Gizi Kurang",
	"Gizi Baik",
	"Beresiko Gizi Lebih",
	"Gizi Lebih",
	"Obesitas",
}

// CanonicalStatusGizi maps s onto the matching StatusGiziCategories entry,
// ignoring case and surrounding spaces. Unknown values come back trimmed.
func CanonicalStatusGizi(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, c := range StatusGiziCategories {
		if strings.EqualFold(c, s) {
			return c, true
		}
	}
	return s, false
}

// IsKnownStatusGizi reports whether s names one of StatusGiziCategories.
// The column itself stays a free-form string.
func IsKnownStatusGizi(s string) bool {
	_, ok := CanonicalStatusGizi(s)
	return ok
}

// HasilPemeriksaan Model (one child growth measurement)
type HasilPemeriksaan struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                                         // Primary key
	NamaBalita     string    `gorm:"size:255;not null" json:"nama_balita"`                         // Child name
	UmurBalita     int       `gorm:"not null" json:"umur_balita"`                                  // Age
	BeratBadan     int       `gorm:"not null" json:"berat_badan"`                                  // Weight
	TinggiBadan    int       `gorm:"not null" json:"tinggi_badan"`                                 // Height
	JenisKelamin   string    `gorm:"size:16;not null" json:"jenis_kelamin"`                        // laki-laki or perempuan
	StatusGizi     string    `gorm:"size:64;not null;index:idx_status_created" json:"status_gizi"` // Nutrition status
	TglPemeriksaan time.Time `gorm:"not null" json:"tgl_pemeriksaan"`                              // Examination date
	NamaOrangtua   string    `gorm:"size:255;not null" json:"nama_orangtua"`                       // Parent name
	CreatedAt      time.Time `gorm:"index;index:idx_status_created" json:"createdAt"`              // Creation timestamp
	UpdatedAt      time.Time `json:"updatedAt"`                                                    // Last update timestamp
}

// TableName keeps the table name used by existing deployments
func (HasilPemeriksaan) TableName() string {
	return "hasil_pemeriksaans"
}
