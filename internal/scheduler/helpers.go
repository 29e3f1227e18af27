package scheduler

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	ClassroomsFile   string        `yaml:"classroomsFile"`
	CoursesFile      string        `yaml:"coursesFile"`
	ReservationsFile string        `yaml:"reservationsFile"`
	ExportFile       string        `yaml:"exportFile"`
	ExcelFile        string        `yaml:"excelFile"`
	Delimiter        string        `yaml:"delimiter"`
	ConflictModel    ConflictModel `yaml:"conflictModel"`
	ServerAddr       string        `yaml:"serverAddr"`
	Storage          string        `yaml:"storage"` // memory or mysql
	DBUser           string        `yaml:"dbUser"`
	DBPass           string        `yaml:"dbPass"`
	DBHost           string        `yaml:"dbHost"`
	DBPort           string        `yaml:"dbPort"`
	DBName           string        `yaml:"dbName"`
	LogLevel         string        `yaml:"logLevel"`
	Development      bool          `yaml:"development"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		ClassroomsFile:   "./res/classrooms.csv",
		CoursesFile:      "./res/courses.csv",
		ReservationsFile: "",
		ExportFile:       "exam_schedule.csv",
		ExcelFile:        "exam_schedule.xlsx",
		Delimiter:        ";",
		ConflictModel:    SingleSlot,
		ServerAddr:       ":3001",
		Storage:          "memory",
		DBHost:           "127.0.0.1",
		DBPort:           "3306",
		DBName:           "exams",
		LogLevel:         "info",
	}
}

// LoadConfiguration layers the defaults, an optional YAML file, an optional
// .env file and the process environment, in that order.
func LoadConfiguration(path string) (*Configuration, error) {
	cfg := NewDefaultConfiguration()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check rejects settings no front end can work with.
func (c *Configuration) Check() error {
	switch c.ConflictModel {
	case SingleSlot, SlotSet:
	default:
		return fmt.Errorf("unknown conflict model %q", c.ConflictModel)
	}
	switch c.Storage {
	case "memory", "mysql":
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

// Delim returns the CSV delimiter as a rune.
func (c *Configuration) Delim() rune {
	return []rune(c.Delimiter)[0]
}

func (c *Configuration) applyEnv() {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	override(&c.CoursesFile, "EXAM_COURSES_FILE")
	override(&c.ClassroomsFile, "EXAM_CLASSROOMS_FILE")
	override(&c.ReservationsFile, "EXAM_RESERVATIONS_FILE")
	override(&c.ExportFile, "EXAM_EXPORT_FILE")
	override(&c.ExcelFile, "EXAM_EXCEL_FILE")
	override(&c.ServerAddr, "EXAM_SERVER_ADDR")
	override(&c.Storage, "EXAM_STORAGE")
	override(&c.LogLevel, "EXAM_LOG_LEVEL")
	override(&c.DBUser, "DB_USER")
	override(&c.DBPass, "DB_PASS")
	override(&c.DBHost, "DB_HOST")
	override(&c.DBPort, "DB_PORT")
	override(&c.DBName, "DB_NAME")
	if v, ok := os.LookupEnv("EXAM_CONFLICT_MODEL"); ok && v != "" {
		c.ConflictModel = ConflictModel(v)
	}
}
