/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package util

import (
	"io"
	"os"
	"strings"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// Config carries the cluster-wide settings of the resource tools. The
// interface selection and the allocation mode are opaque to the list
// parsers; they are read by the reporting layer only.
type Config struct {
	Interface      string `yaml:"Interface"`
	AllocationMode string `yaml:"AllocationMode"`
	MaxListEntries uint   `yaml:"MaxListEntries"`

	LogFile string `yaml:"LogFile"`
}

var DefaultConfigPath string

func init() {
	DefaultConfigPath = "/etc/crane/resctl.yaml"
}

// ParseConfig reads the yaml configuration file. A missing file is not an
// error, the defaults apply; an unreadable or malformed file is fatal.
func ParseConfig(configFilePath string) *Config {
	config := &Config{
		Interface:      "msr",
		AllocationMode: "core",
		MaxListEntries: 128,
	}

	content, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config
		}
		log.Errorf("Failed to read config file %s: %s", configFilePath, err.Error())
		os.Exit(ErrorCmdArg)
	}
	if err = yaml.Unmarshal(content, config); err != nil {
		log.Errorf("Failed to parse config file %s: %s", configFilePath, err.Error())
		os.Exit(ErrorCmdArg)
	}
	return config
}

// InitLogger configures logrus with the nested formatter at the given level.
func InitLogger(level string) {
	log.SetFormatter(&nested.Formatter{})

	switch strings.ToLower(level) {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// SetLogFile mirrors diagnostics into a rotated log file in addition to
// stderr.
func SetLogFile(path string) {
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MiB
		MaxBackups: 3,
		MaxAge:     14, // days
	}))
}

func SetBorderlessTable(table *tablewriter.Table) {
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetNoWhiteSpace(true)
}
