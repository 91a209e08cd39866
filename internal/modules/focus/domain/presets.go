package domain

// Common package names grouped by what the preset allow-lists need. Both AOSP
// and Google variants are listed where they diverge per device vendor.
const (
	pkgPhone       = "com.android.dialer"
	pkgPhoneAlt    = "com.google.android.dialer"
	pkgSMS         = "com.android.mms"
	pkgSMSAlt      = "com.google.android.apps.messaging"
	pkgContacts    = "com.android.contacts"
	pkgContactsAlt = "com.google.android.contacts"

	pkgEmail    = "com.google.android.gm"
	pkgCalendar = "com.google.android.calendar"
	pkgSlack    = "com.slack"
	pkgTeams    = "com.microsoft.teams"
	pkgZoom     = "us.zoom.videomeetings"
	pkgNotion   = "notion.id"
	pkgDrive    = "com.google.android.apps.docs"

	pkgKindle    = "com.amazon.kindle"
	pkgAudible   = "com.audible.application"
	pkgPocket    = "com.ideashower.readitlater.pro"
	pkgMedium    = "com.medium.reader"
	pkgFeedly    = "com.devhd.feedly"
	pkgGoodreads = "com.goodreads"

	pkgNotes = "com.google.android.keep"

	pkgClock    = "com.android.deskclock"
	pkgClockAlt = "com.google.android.deskclock"
	pkgAlarm    = "com.android.alarm"
)

// PresetModes is the fixed catalog seed. Order is the display order.
func PresetModes() []FocusMode {
	return []FocusMode{
		{
			ID:   "emergency",
			Name: "Emergency Only",
			Icon: "🚨",
			AllowedApps: []string{
				pkgPhone, pkgPhoneAlt,
				pkgSMS, pkgSMSAlt,
				pkgContacts, pkgContactsAlt,
			},
			EnableGrayscale: true,
		},
		{
			ID:   "work",
			Name: "Work Mode",
			Icon: "💼",
			AllowedApps: []string{
				pkgPhone, pkgPhoneAlt,
				pkgSMS, pkgSMSAlt,
				pkgEmail, pkgCalendar,
				pkgSlack, pkgTeams, pkgZoom,
				pkgNotion, pkgNotes, pkgDrive,
			},
		},
		{
			ID:   "reading",
			Name: "Reading Mode",
			Icon: "📚",
			AllowedApps: []string{
				pkgPhone, pkgPhoneAlt,
				pkgKindle, pkgAudible, pkgPocket,
				pkgMedium, pkgFeedly, pkgGoodreads,
				pkgNotes,
			},
			EnableGrayscale: true,
		},
		{
			ID:   "sleep",
			Name: "Sleep Mode",
			Icon: "😴",
			AllowedApps: []string{
				pkgClock, pkgClockAlt, pkgAlarm,
				pkgPhone, pkgPhoneAlt,
			},
			EnableGrayscale: true,
		},
	}
}
