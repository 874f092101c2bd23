// Package cmd (config.go) defines the 'config' commands, which store the
// client registration used by every other command.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/config"
	"github.com/tonimelisma/onedrive-live/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the client registration",
	Long:  `Stores the client id, client secret and redirect URL registered with the identity provider, plus optional endpoint overrides.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the client registration to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrCreate()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return configInitLogic(cmd, cfg)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config file location and settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrCreate()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		path, err := config.Path()
		if err != nil {
			return err
		}
		configShowLogic(path, cfg)
		return nil
	},
}

func configInitLogic(cmd *cobra.Command, cfg *config.Configuration) error {
	flags := cmd.Flags()
	for flag, target := range map[string]*string{
		"client-id":     &cfg.ClientID,
		"client-secret": &cfg.ClientSecret,
		"callback":      &cfg.Callback,
		"auth-url":      &cfg.Endpoints.AuthURL,
		"token-url":     &cfg.Endpoints.TokenURL,
		"api-url":       &cfg.Endpoints.APIURL,
	} {
		if !flags.Changed(flag) {
			continue
		}
		v, err := flags.GetString(flag)
		if err != nil {
			return err
		}
		*target = v
	}

	if err := cfg.SDKConfig(nil).Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}
	ui.Success("Configuration saved.")
	return nil
}

func configShowLogic(path string, cfg *config.Configuration) {
	secret := "-"
	if cfg.ClientSecret != "" {
		secret = "(set)"
	}
	fmt.Printf("Config file:    %s\n", path)
	fmt.Printf("Client ID:      %s\n", cfg.ClientID)
	fmt.Printf("Client Secret:  %s\n", secret)
	fmt.Printf("Callback:       %s\n", cfg.Callback)
	fmt.Printf("Auth URL:       %s\n", cfg.Endpoints.AuthURL)
	fmt.Printf("Token URL:      %s\n", cfg.Endpoints.TokenURL)
	fmt.Printf("API URL:        %s\n", cfg.Endpoints.APIURL)
	fmt.Printf("HTTP Timeout:   %s\n", cfg.HTTP.Timeout)
	fmt.Printf("Debug:          %t\n", cfg.Debug)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().String("client-id", "", "Client id issued by the identity provider")
	configInitCmd.Flags().String("client-secret", "", "Client secret issued by the identity provider")
	configInitCmd.Flags().String("callback", "", "Redirect URL registered for the client")
	configInitCmd.Flags().String("auth-url", "", "Override the authorization endpoint")
	configInitCmd.Flags().String("token-url", "", "Override the token endpoint")
	configInitCmd.Flags().String("api-url", "", "Override the API base URL")
}
