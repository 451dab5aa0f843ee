// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/absmach/opcua-cli/opcua"
	"github.com/absmach/opcua-cli/pkg/errors"
)

type server struct {
	Hostname       string `toml:"hostname"`
	Port           int    `toml:"port"`
	Path           string `toml:"path"`
	AuthType       string `toml:"auth_type"`
	Username       string `toml:"username"`
	SecurityMode   string `toml:"security_mode"`
	SecurityPolicy string `toml:"security_policy"`
}

type config struct {
	Server server `toml:"server"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

var (
	errReadFail      = errors.New("failed to read config file")
	errWritingConfig = errors.New("error in writing the updated config to file")
)

// ParseConfig reads the optional TOML config file and seeds defaults for
// every flag that was not set on the command line. When the file does not
// exist it is created with the built-in defaults. Without --config no file
// is read or written.
func ParseConfig(cmd *cobra.Command) error {
	if ConfigPath == "" {
		return nil
	}

	_, err := os.Stat(ConfigPath)
	switch {
	// If the file does not exist, create it with default values.
	case os.IsNotExist(err):
		defaultConfig := config{
			Server: server{
				Hostname: Hostname,
				Port:     Port,
				Path:     Path,
				AuthType: opcua.AuthAnonymous,
			},
		}
		buf, err := toml.Marshal(defaultConfig)
		if err != nil {
			return err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return err
	}

	c, err := read(ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if c.Server.Hostname != "" && !flags.Changed("hostname") {
		Hostname = c.Server.Hostname
	}
	if c.Server.Port != 0 && !flags.Changed("port") {
		Port = c.Server.Port
	}
	if c.Server.Path != "" && !flags.Changed("path") {
		Path = c.Server.Path
	}
	if c.Server.AuthType != "" && !flags.Changed("auth-type") {
		AuthType = c.Server.AuthType
	}
	if c.Server.Username != "" && !flags.Changed("username") {
		Username = c.Server.Username
	}
	if c.Server.SecurityMode != "" && !flags.Changed("security-mode") {
		SecurityMode = c.Server.SecurityMode
	}
	if c.Server.SecurityPolicy != "" && !flags.Changed("security-policy") {
		SecurityPolicy = c.Server.SecurityPolicy
	}

	return nil
}

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, err
	}

	return c, nil
}
