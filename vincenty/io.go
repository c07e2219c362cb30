package vincenty

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadSamplePoints reads requested sample distances from a CSV file with a
// header row:
//
//	serial no,distance
//	1,100000
//	2,250000
func LoadSamplePoints(path string) ([]SamplePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.ReuseRecord = true

	// Header row.
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var samples []SamplePoint
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		serial, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad serial %q: %w", path, line, record[0], err)
		}
		dist, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad distance %q: %w", path, line, record[1], err)
		}
		samples = append(samples, SamplePoint{Serial: serial, Distance: dist})
	}
	return samples, nil
}

// ToCSV writes the placed points as CSV rows.
func (res *InterpolationResult) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("serial no,distance,latitude,longitude\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := range res.Points {
		p := &res.Points[i]
		buf.WriteString(strconv.Itoa(p.Serial))
		writeFloat(p.Distance)
		writeFloat(p.Latitude)
		writeFloat(p.Longitude)
		buf.WriteString("\n")
	}
}
