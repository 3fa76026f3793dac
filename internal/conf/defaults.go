// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)
	viper.SetDefault("environment", "production")

	viper.SetDefault("cms.token", "")
	viper.SetDefault("cms.managementtoken", "")
	viper.SetDefault("cms.spaceid", "")
	viper.SetDefault("cms.baseurl", "https://api.storyblok.com/v2")
	viper.SetDefault("cms.managementurl", "https://mapi.storyblok.com/v1")
	viper.SetDefault("cms.assethost", "a.storyblok.com")
	viper.SetDefault("cms.timeout", 10*time.Second)
	viper.SetDefault("cms.cachettl", 30*time.Second)

	viper.SetDefault("content.settingsslug", "site-settings")
	viper.SetDefault("content.defaultfixtureslug", "home")
	viper.SetDefault("content.fixturesdir", "")
	viper.SetDefault("content.settingscachettl", 60*time.Second)

	viper.SetDefault("codegen.outputdir", "internal/schema")
	viper.SetDefault("codegen.hashfile", "schema.sha256")
	viper.SetDefault("codegen.maxretries", 5)
	viper.SetDefault("codegen.retrybasems", 500)

	viper.SetDefault("log.enabled", true)
	viper.SetDefault("log.path", "logs/")
}
