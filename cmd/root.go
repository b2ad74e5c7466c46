package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hr-assistant"
)

type Config struct {
	Server *ServerConfig `mapstructure:"server"`
	AI     *AIConfig     `mapstructure:"ai"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	CORSOrigins    []string `mapstructure:"cors-origins"`
	MaxUploadBytes int64    `mapstructure:"max-upload-bytes"`
}

type AIConfig struct {
	Provider      string        `mapstructure:"provider"`
	MaxInputRunes int           `mapstructure:"max-input-runes"`
	Gemini        *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string             `mapstructure:"api-key"`
	APIKeyFile   string             `mapstructure:"api-key-file"`
	Model        string             `mapstructure:"model"`
	MaxLogLength int                `mapstructure:"max-log-length"`
	Temperature  *TemperatureConfig `mapstructure:"temperature"`
}

type TemperatureConfig struct {
	JobPosting      float32 `mapstructure:"job-posting"`
	ResumeMatch     float32 `mapstructure:"resume-match"`
	InterviewScript float32 `mapstructure:"interview-script"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hr-assistant writes job postings, scores résumés and drafts interview scripts with Gemini",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("server.addr", "HR_ASSISTANT_ADDR"); err != nil {
		log.Fatalf("binding HR_ASSISTANT_ADDR environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hr-assistant.yaml in current directory, optional)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.max-upload-bytes", 1<<20)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.max-input-runes", 20000)
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.max-log-length", 200)
	viper.SetDefault("ai.gemini.temperature.job-posting", 0.7)
	viper.SetDefault("ai.gemini.temperature.resume-match", 0.2)
	viper.SetDefault("ai.gemini.temperature.interview-script", 0.6)
}

func initConfig() {
	// Version needs neither the environment nor the config.
	if versionCmd.CalledAs() != "" {
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env file: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional, but a broken one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
