package dto

type AppOutput struct {
	PackageName string `json:"package_name"`
	AppName     string `json:"app_name"`
	Favorite    bool   `json:"favorite"`
	Opens       int    `json:"opens"`
}

type ToggleFavoriteOutput struct {
	Favorites []string `json:"favorites"`
	Changed   bool     `json:"changed"`
}

type LaunchOutput struct {
	PackageName string `json:"package_name"`
	Opens       int    `json:"opens"`
}
