package models

import "gorm.io/datatypes"

// SettingsDocID is the fixed document id of the settings singleton.
const SettingsDocID = "config"

// SheetsConfig is the optional Google Sheets order-sync configuration.
// An AccessToken of "simulated" short-circuits syncing into a log-only no-op.
type SheetsConfig struct {
	SpreadsheetID string `json:"spreadsheetId"`
	SheetName     string `json:"sheetName"`
	AccessToken   string `json:"accessToken"`
	Enabled       bool   `json:"enabled"`
	LastSyncedAt  int64  `json:"lastSyncedAt,omitempty"`
}

// AppSettings is the single store-wide settings record. Categories is ordered
// and drives both the storefront filter tabs and the admin category dropdown.
type AppSettings struct {
	ID             string                      `json:"-" gorm:"primaryKey;size:32"`
	WhatsAppNumber string                      `json:"whatsappNumber"`
	Categories     datatypes.JSONSlice[string] `json:"categories"`
	Sheets         SheetsConfig                `json:"sheets" gorm:"embedded;embeddedPrefix:sheets_"`
}

func (AppSettings) TableName() string {
	return "settings"
}
