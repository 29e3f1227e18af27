package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rhyrak/go-exam-schedule/internal/csvio"
	"github.com/rhyrak/go-exam-schedule/internal/logging"
	"github.com/rhyrak/go-exam-schedule/internal/report"
	"github.com/rhyrak/go-exam-schedule/internal/scheduler"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	coursesFile := flag.String("courses", "", "Courses CSV (overrides config)")
	classroomsFile := flag.String("classrooms", "", "Classrooms CSV (overrides config)")
	reservationsFile := flag.String("reservations", "", "Existing classroom bookings CSV (optional)")
	exportFile := flag.String("export", "", "CSV output path (overrides config)")
	excelFile := flag.String("xlsx", "", "Excel output path (overrides config)")
	conflictModel := flag.String("conflict-model", "", "single or slots (overrides config)")
	flag.Parse()

	cfg, err := scheduler.LoadConfiguration(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	setIfNotEmpty(&cfg.CoursesFile, *coursesFile)
	setIfNotEmpty(&cfg.ClassroomsFile, *classroomsFile)
	setIfNotEmpty(&cfg.ReservationsFile, *reservationsFile)
	setIfNotEmpty(&cfg.ExportFile, *exportFile)
	setIfNotEmpty(&cfg.ExcelFile, *excelFile)
	if *conflictModel != "" {
		cfg.ConflictModel = scheduler.ConflictModel(*conflictModel)
	}
	if err := cfg.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Parse and instantiate course and classroom objects from CSV
	courses, err := csvio.LoadCourses(cfg.CoursesFile, cfg.Delim())
	if err != nil {
		logger.Fatal("loading courses", zap.Error(err))
	}
	classrooms, err := csvio.LoadClassrooms(cfg.ClassroomsFile, cfg.Delim())
	if err != nil {
		logger.Fatal("loading classrooms", zap.Error(err))
	}
	reservations, err := csvio.LoadReservations(cfg.ReservationsFile, cfg.Delim())
	if err != nil {
		logger.Fatal("loading reservations", zap.Error(err))
	}

	start := time.Now()
	schedule, err := scheduler.Run(scheduler.Input{
		Courses:      courses,
		Classrooms:   classrooms,
		Reservations: reservations,
	}, scheduler.WithConflictModel(cfg.ConflictModel), scheduler.WithLogger(logger))
	if err != nil {
		logger.Fatal("scheduling", zap.Error(err))
	}
	elapsed := time.Since(start)

	valid, msg := scheduler.Validate(courses, schedule, cfg.ConflictModel)
	if !valid {
		fmt.Println("Invalid schedule:")
	} else {
		fmt.Println("Passed all tests")
	}
	fmt.Print(msg)

	err = report.All(schedule,
		&report.Console{Out: os.Stdout},
		&report.CSV{Path: cfg.ExportFile, Delimiter: cfg.Delim()},
		&report.Excel{Path: cfg.ExcelFile},
	)
	if err != nil {
		logger.Fatal("exporting schedule", zap.Error(err))
	}

	fmt.Printf("Timer: %f ms\n", float64(elapsed.Microseconds())/1000.0)
	fmt.Println("Exported output to: " + cfg.ExportFile + ", " + cfg.ExcelFile)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
