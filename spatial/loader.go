package spatial

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// fieldsPerRecord is the number of coordinates on one input line.
const fieldsPerRecord = 3

// Parse reads points from r, one "x,y,z" record per line, preserving input order.
// Blank lines are skipped. The first malformed line aborts parsing with
// ErrMalformedRecord wrapped as "line N: ...".
//
// Complexity: O(L) time over the input length, O(N) memory for N points.
func Parse(r io.Reader) ([]Point, error) {
	var (
		points []Point
		line   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		p, err := parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, text, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spatial: reading points: %w", err)
	}

	return points, nil
}

// Load opens path and parses it with Parse.
func Load(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spatial: %w", err)
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// parseRecord converts one trimmed, non-empty record into a Point.
func parseRecord(text string) (Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != fieldsPerRecord {
		return Point{}, fmt.Errorf("want %d fields, got %d: %w", fieldsPerRecord, len(fields), ErrMalformedRecord)
	}

	var coords [fieldsPerRecord]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, fmt.Errorf("field %d: %v: %w", i+1, err, ErrMalformedRecord)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
