package config

// SiteSettings holds values rendered into the public pages.
type SiteSettings struct {
	Name        string `mapstructure:"name"`
	BaseURL     string `mapstructure:"base_url"`
	StaticDir   string `mapstructure:"static_dir"`
	PressAuthor string `mapstructure:"press_author"`
}
