package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Course is one row of the course catalog. Rating and Difficulty are optional
// columns in the source data; a missing or NaN cell is carried as nil rather
// than a zero value.
type Course struct {
	Name       string
	URL        string
	Rating     *float64
	Difficulty *string
	Tags       []string
}

// Catalog holds the loaded course rows in file order.
type Catalog struct {
	courses []Course
}

// Load reads a course catalog CSV. The file must carry a header row naming at
// least Name, Url and Tags; rows with fewer columns than the header are
// skipped.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read course catalog: %w", err)
	}
	if len(records) == 0 {
		return &Catalog{}, nil
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	nameIdx, ok := col["name"]
	if !ok {
		return nil, fmt.Errorf("course catalog: missing Name column")
	}
	urlIdx, ok := col["url"]
	if !ok {
		return nil, fmt.Errorf("course catalog: missing Url column")
	}
	ratingIdx, hasRating := col["rating"]
	difficultyIdx, hasDifficulty := col["difficulty"]
	tagsIdx, hasTags := col["tags"]

	courses := make([]Course, 0, len(records)-1)
	for _, rec := range records[1:] {
		if nameIdx >= len(rec) || urlIdx >= len(rec) {
			continue
		}
		c := Course{
			Name: strings.TrimSpace(rec[nameIdx]),
			URL:  strings.TrimSpace(rec[urlIdx]),
		}
		if c.Name == "" {
			continue
		}
		if hasRating && ratingIdx < len(rec) {
			c.Rating = parseRating(rec[ratingIdx])
		}
		if hasDifficulty && difficultyIdx < len(rec) {
			c.Difficulty = parseDifficulty(rec[difficultyIdx])
		}
		if hasTags && tagsIdx < len(rec) {
			c.Tags = parseTags(rec[tagsIdx])
		}
		courses = append(courses, c)
	}

	return &Catalog{courses: courses}, nil
}

func (c *Catalog) Courses() []Course {
	if c == nil {
		return nil
	}
	return c.courses
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.courses)
}

// parseTags splits the serialized list form `['a', 'b']` into clean tag
// strings.
func parseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.Trim(p, " '[]")
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

func parseRating(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseDifficulty(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil
	}
	return &raw
}
