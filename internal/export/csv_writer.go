package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"xsim-analytics/observatory/internal/models"
	"xsim-analytics/observatory/internal/services"
)

// FileNameSuffix builds the suffix appended to every exported report file.
func FileNameSuffix(version, group string, now time.Time) string {
	return fmt.Sprintf("_%s_%s_%d_%d_%d", version, group, now.Year(), int(now.Month()), now.Day())
}

// AircraftReportWriter dumps the aircraft usage report as CSV. Each
// section is a heading row, a column-header row, then ranked data rows
// with the share of total flights.
type AircraftReportWriter struct {
	w            *csv.Writer
	totalFlights int
}

func NewAircraftReportWriter(out io.Writer, totalFlights int) *AircraftReportWriter {
	return &AircraftReportWriter{
		w:            csv.NewWriter(out),
		totalFlights: totalFlights,
	}
}

// WriteAll writes the four standard sections.
func (rw *AircraftReportWriter) WriteAll(stats *models.AircraftStats) error {
	if err := rw.WriteCategories("AIRCRAFT CATEGORIES (BY POPULARITY)", stats.CategoryRollup()); err != nil {
		return err
	}
	if err := rw.WriteCounter("FIRST PARTY PLANES (BY POPULARITY)", stats.FirstParty); err != nil {
		return err
	}
	if err := rw.WriteCounter("THIRD PARTY PLANES (BY POPULARITY)", stats.ThirdParty); err != nil {
		return err
	}
	if err := rw.WriteCounter("ALL PLANES (BY POPULARITY)", stats.Combined); err != nil {
		return err
	}
	rw.w.Flush()
	return rw.w.Error()
}

// WriteCounter writes one ranked aircraft section.
func (rw *AircraftReportWriter) WriteCounter(heading string, counter *models.AircraftCounter) error {
	if err := rw.w.Write([]string{heading}); err != nil {
		return err
	}
	if err := rw.w.Write([]string{"Aircraft", "Engines", "Classification", "Studio", "% Flights"}); err != nil {
		return err
	}
	for _, entry := range counter.Ranked() {
		row := []string{
			entry.Aircraft.Name,
			strconv.Itoa(entry.Aircraft.Engines),
			entry.Aircraft.Categories.String(),
			entry.Aircraft.Studio,
			rw.percent(entry.Count),
		}
		if err := rw.w.Write(row); err != nil {
			return err
		}
	}
	return rw.w.Write([]string{})
}

// WriteCategories writes the per-category section. The rollup is already
// in declaration order; rows are re-ranked by count to match the aircraft
// sections.
func (rw *AircraftReportWriter) WriteCategories(heading string, rollup []models.CategoryCount) error {
	if err := rw.w.Write([]string{heading}); err != nil {
		return err
	}
	if err := rw.w.Write([]string{"Category", "", "", "", "% Flights"}); err != nil {
		return err
	}
	counts := make(services.Counts, 0, len(rollup))
	for _, cc := range rollup {
		counts = append(counts, services.LabelCount{Label: cc.Category.String(), Count: cc.Count})
	}
	for _, lc := range counts.SortedByCount() {
		row := []string{lc.Label, "", "", "", rw.percent(lc.Count)}
		if err := rw.w.Write(row); err != nil {
			return err
		}
	}
	return rw.w.Write([]string{})
}

func (rw *AircraftReportWriter) percent(count int) string {
	if rw.totalFlights == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(count)/float64(rw.totalFlights), 'f', -1, 64)
}

// WriteHardwareReport dumps the hardware survey as CSV, one section per
// breakdown.
func WriteHardwareReport(out io.Writer, report *services.HardwareReport) error {
	w := csv.NewWriter(out)

	writeSeries := func(heading, label, population string, series services.Series) error {
		if err := w.Write([]string{heading}); err != nil {
			return err
		}
		if err := w.Write([]string{label, "% of All " + population}); err != nil {
			return err
		}
		for _, p := range series {
			if err := w.Write([]string{p.Label, strconv.FormatFloat(p.Percent, 'f', -1, 64) + "%"}); err != nil {
				return err
			}
		}
		return w.Write([]string{})
	}

	writeCounts := func(heading, label, population string, counts services.Counts) error {
		return writeSeries(heading, label, population,
			services.CountsToPercents(counts, counts.Total(), 0))
	}

	if err := writeSeries("PLATFORM BREAKDOWN", "Operating System", "Machines", report.OperatingSystems); err != nil {
		return err
	}
	for _, platform := range []string{"Windows", "Mac", "Linux"} {
		if versions, ok := report.OSVersions[platform]; ok {
			if err := writeCounts("OS VERSIONS ("+platform+")", "OS Version", "Machines", versions); err != nil {
				return err
			}
		}
	}
	if err := writeSeries("USERS WITH AT LEAST THIS MUCH RAM", "RAM Amount", "Users", report.RAM); err != nil {
		return err
	}
	if err := writeSeries("GPU PLATFORM", "GPU Platform", "Machines", report.GPUPlatforms); err != nil {
		return err
	}
	if err := writeSeries("GPU MANUFACTURER", "GPU Manufacturer", "Machines", report.GPUManufacturers); err != nil {
		return err
	}
	if err := writeSeries("GPU GENERATION", "GPU Generation", "Machines", report.GPUGenerations); err != nil {
		return err
	}
	if err := writeSeries("VR USAGE", "VR Status", "Users", report.VRUsage); err != nil {
		return err
	}
	if err := writeSeries("VR HEADSETS", "Headset Type", "Users", report.VRHeadsets); err != nil {
		return err
	}
	if err := writeCounts("NUMBER OF CPU CORES", "CPU Cores", "Machines", report.CPUCores); err != nil {
		return err
	}
	if report.FlightControls != nil {
		if err := writeCounts("PRIMARY FLIGHT CONTROLS TYPE", "Flight Controls Type", "Users", report.FlightControls.Types); err != nil {
			return err
		}
		if err := writeCounts("PRIMARY FLIGHT CONTROLS MODEL (for non-mouse users)", "Flight Controls Model", "Users", report.FlightControls.Models); err != nil {
			return err
		}
		if err := writeCounts("USERS FLYING WITH PEDALS", "Has Pedals?", "Users", report.FlightControls.Pedals); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
