package config

// ExampleConfig returns the configuration written by `macpack init`.
func ExampleConfig() *Config {
	highRes := true
	return &Config{
		Project: ProjectConfig{
			Name:        "AHItool",
			DisplayName: "AHItool",
			Identifier:  "com.ahitool.gui",
			Version:     "1.1",
		},
		Bundle: BundleConfig{
			Binary:         "target/release/gui",
			Executable:     "ahitool",
			Variant:        "v2",
			OutputDir:      "dist",
			Icon:           "assets/icon.png",
			HighResolution: &highRes,
		},
		DMG: DMGConfig{
			VolumeName: "AHItool",
			Name:       "AHItool.dmg",
		},
		Sign: SignConfig{
			Identity: "env(MACPACK_SIGN_IDENTITY:--)",
		},
	}
}
