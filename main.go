// Vincenty Geodesic Toolkit
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/rokonmist/vincenty-go/vincenty"
)

func main() {
	parser := argparse.NewParser("vincenty",
		"Computes geodesic distance, destination and intermediate points on the WGS-84 ellipsoid")

	distanceMode := parser.Flag("", "distance", &argparse.Options{
		Help: "Compute geodesic distance and bearings between two points"})

	destinationMode := parser.Flag("", "destination", &argparse.Options{
		Help: "Compute destination point from a start point, bearing and distance"})

	interpolateMode := parser.Flag("", "interpolate", &argparse.Options{
		Help: "Compute intermediate points along the geodesic path"})

	startpoint := parser.String("", "startpoint", &argparse.Options{
		Help: "Start point as \"lat,lon\" (e.g. 23.7769,97.7247)"})

	endpoint := parser.String("", "endpoint", &argparse.Options{
		Help: "End point as \"lat,lon\" (distance and interpolation modes)"})

	dist := parser.Float("", "dist", &argparse.Options{
		Help: "Distance in meters (destination mode)"})

	bearing := parser.Float("", "bearing", &argparse.Options{
		Help: "Initial bearing in degrees (destination mode)"})

	points := parser.String("", "points", &argparse.Options{
		Help: "CSV file with sample distances (interpolation mode)"})

	samples := parser.Int("", "samples", &argparse.Options{
		Help: "Number of evenly spaced intermediate points (interpolation mode)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("vincenty")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	if *distanceMode {
		p1 := mustParsePoint(*startpoint, "startpoint")
		p2 := mustParsePoint(*endpoint, "endpoint")

		res, err := vincenty.WGS84.Inverse(p1, p2)
		if err != nil {
			fail(err)
		}
		if !res.Converged {
			fail(fmt.Errorf("the points are too close to antipodal for a reliable solution: %w",
				vincenty.ErrNoConvergence))
		}
		fmt.Printf("Distance: %.3f m\nInitial bearing: %.4f°\nFinal bearing: %.4f°\n",
			res.Distance, res.InitialBearing, res.FinalBearing)

	} else if *destinationMode {
		p1 := mustParsePoint(*startpoint, "startpoint")

		res, err := vincenty.WGS84.Direct(p1, *bearing, *dist)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Destination:\nLatitude: %.8f°\nLongitude: %.8f°\nReverse bearing: %.4f°\n",
			res.Destination.Lat, res.Destination.Lon, res.FinalBearing)

	} else if *interpolateMode {
		p1 := mustParsePoint(*startpoint, "startpoint")
		p2 := mustParsePoint(*endpoint, "endpoint")

		var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
		out := *filename

		if *points != "" {
			sp, err := vincenty.LoadSamplePoints(*points)
			if err != nil {
				fail(err)
			}
			res, err := vincenty.WGS84.Interpolate(p1, p2, sp)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Total geodesic distance: %.3f m, Initial bearing: %.4f°\n",
				res.TotalDistance, res.InitialBearing)
			res.ToCSV(buf)
			if out == "" {
				out = filepath.Join(filepath.Dir(*points), "interpolated_points.csv")
			}
		} else if *samples > 0 {
			pts, err := vincenty.WGS84.Sample(p1, p2, *samples)
			if err != nil {
				fail(err)
			}
			buf.WriteString("latitude,longitude\n")
			for _, p := range pts {
				buf.WriteString(strconv.FormatFloat(p.Lat, 'f', -1, 64))
				buf.WriteString(",")
				buf.WriteString(strconv.FormatFloat(p.Lon, 'f', -1, 64))
				buf.WriteString("\n")
			}
		} else {
			fail(errors.New("interpolation mode requires --points or --samples"))
		}

		if out == "" {
			fmt.Print(buf.String())
		} else {
			logger.Infof("saving interpolated points: %s", out)
			if err := os.WriteFile(out, buf.Bytes(), os.ModePerm); err != nil {
				fail(err)
			}
			fmt.Printf("Interpolated points saved: %s\n", out)
		}

	} else {
		fmt.Print(parser.Usage(nil))
	}
}

// mustParsePoint parses a "lat,lon" pair in decimal degrees and validates
// its ranges, exiting with a message on malformed input.
func mustParsePoint(s, name string) vincenty.GeoPoint {
	if s == "" {
		fail(fmt.Errorf("--%s is required for this mode", name))
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		fail(fmt.Errorf("--%s: expected \"lat,lon\", got %q", name, s))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		fail(fmt.Errorf("--%s: bad latitude %q", name, parts[0]))
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		fail(fmt.Errorf("--%s: bad longitude %q", name, parts[1]))
	}
	p := vincenty.GeoPoint{Lat: lat, Lon: lon}
	if err := p.Validate(); err != nil {
		fail(fmt.Errorf("--%s: %w", name, err))
	}
	return p
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
