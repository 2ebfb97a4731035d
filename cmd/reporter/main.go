package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"xsim-analytics/observatory/internal/common"
	"xsim-analytics/observatory/internal/export"
	"xsim-analytics/observatory/internal/logging"
	"xsim-analytics/observatory/internal/providers"
	"xsim-analytics/observatory/internal/services"
)

func main() {
	versionFlag := flag.String("version", "11", "The simulator version you want data on (e.g. 11 or 11.34r1)")
	groupFlag := flag.String("group", "paid", "User group to report on: all, paid, or demo")
	outDir := flag.String("out", ".", "Directory to write report files into")
	flag.Parse()

	if err := logging.Init("development"); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Close()

	version := providers.Version(*versionFlag)
	if _, ok := version.Meta(); !ok {
		log.Fatalf("unknown simulator version %q", *versionFlag)
	}

	var group providers.UserGroup
	switch *groupFlag {
	case "all":
		group = providers.GroupAll
	case "paid":
		group = providers.GroupPaidOnly
	case "demo":
		group = providers.GroupDemoOnly
	default:
		log.Fatalf("unknown user group %q", *groupFlag)
	}

	cache := common.NewMemoryCache()
	analytics := providers.NewAnalyticsProvider(cache, nil)
	ctx := context.Background()
	suffix := export.FileNameSuffix(string(version), group.Name(), time.Now())

	aircraftSvc := services.NewAircraftStatsService(analytics, nil)
	stats, err := aircraftSvc.BuildStats(ctx, version, group)
	if err != nil {
		log.Fatalf("build aircraft stats: %v", err)
	}

	aircraftPath := *outDir + "/aircraft_analysis" + suffix + ".csv"
	aircraftFile, err := os.Create(aircraftPath)
	if err != nil {
		log.Fatalf("create %s: %v", aircraftPath, err)
	}
	writer := export.NewAircraftReportWriter(aircraftFile, stats.TotalFlights())
	if err := writer.WriteAll(stats); err != nil {
		log.Fatalf("write aircraft report: %v", err)
	}
	if err := aircraftFile.Close(); err != nil {
		log.Fatalf("close %s: %v", aircraftPath, err)
	}
	log.Println("Wrote", aircraftPath)

	hardwareSvc := services.NewHardwareStatsService(analytics, nil, version, group)
	report, err := hardwareSvc.BuildReport(ctx)
	if err != nil {
		log.Fatalf("build hardware report: %v", err)
	}

	hardwarePath := *outDir + "/hardware_analysis" + suffix + ".csv"
	hardwareFile, err := os.Create(hardwarePath)
	if err != nil {
		log.Fatalf("create %s: %v", hardwarePath, err)
	}
	if err := export.WriteHardwareReport(hardwareFile, report); err != nil {
		log.Fatalf("write hardware report: %v", err)
	}
	if err := hardwareFile.Close(); err != nil {
		log.Fatalf("close %s: %v", hardwarePath, err)
	}
	log.Println("Wrote", hardwarePath)
}
