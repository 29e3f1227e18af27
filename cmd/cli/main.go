package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rhyrak/go-exam-schedule/internal/logging"
	"github.com/rhyrak/go-exam-schedule/internal/prompt"
	"github.com/rhyrak/go-exam-schedule/internal/report"
	"github.com/rhyrak/go-exam-schedule/internal/scheduler"
	"go.uber.org/zap"
)

func main() {
	excelFile := flag.String("xlsx", "exam_schedule.xlsx", "Excel output path")
	conflictModel := flag.String("conflict-model", string(scheduler.SingleSlot), "single or slots")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	logger, err := logging.New(*logLevel, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Ask the user for courses first, then rooms
	in := prompt.Stdin()
	courses, err := in.Courses()
	if err != nil {
		logger.Fatal("reading courses", zap.Error(err))
	}
	classrooms, err := in.Classrooms()
	if err != nil {
		logger.Fatal("reading rooms", zap.Error(err))
	}

	m := scheduler.ConflictModel(*conflictModel)
	if m != scheduler.SingleSlot && m != scheduler.SlotSet {
		logger.Fatal("unknown conflict model", zap.String("conflict_model", *conflictModel))
	}
	schedule, err := scheduler.Run(scheduler.Input{Courses: courses, Classrooms: classrooms},
		scheduler.WithConflictModel(m), scheduler.WithLogger(logger))
	if err != nil {
		logger.Fatal("scheduling", zap.Error(err))
	}

	for _, a := range schedule.Assignments {
		fmt.Printf("%s assigned to %s\n", a.Course, a.Classroom)
	}
	for _, c := range schedule.Unscheduled {
		fmt.Printf("No available room for %s\n", c)
	}

	err = report.All(schedule, &report.Console{Out: os.Stdout}, &report.Excel{Path: *excelFile})
	if err != nil {
		logger.Fatal("exporting schedule", zap.Error(err))
	}
	fmt.Println("Exam schedule exported to " + *excelFile)
}
