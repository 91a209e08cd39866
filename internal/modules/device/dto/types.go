package dto

type InfoOutput struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Version  string `json:"version"`
}

type AppOutput struct {
	PackageName string `json:"package_name"`
	AppName     string `json:"app_name"`
}

type StatusOutput struct {
	Info              InfoOutput `json:"info"`
	PermissionGranted bool       `json:"permission_granted"`
	GrayscaleEnabled  bool       `json:"grayscale_enabled"`
	BlockedApps       []string   `json:"blocked_apps"`
}
