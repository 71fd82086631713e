package repository

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayushqc/college-info-api/internal/model"
)

// CollegeFilter translates list query parameters into a store filter plus a
// post-fetch narrowing step. Empty values mean "no filter": an empty district
// or program string leaves the corresponding term out entirely, so a request
// with neither parameter matches every college.
type CollegeFilter struct {
	District string
	Program  string
}

// Document builds the MongoDB filter document. District is an exact-match
// term. Program uses $elemMatch with a case-insensitive quoted-literal regex,
// which only proves that at least one embedded program matches — it does not
// narrow the returned array. Narrow below finishes the job.
func (f CollegeFilter) Document() bson.M {
	filter := bson.M{}
	if f.District != "" {
		filter["district"] = f.District
	}
	if f.Program != "" {
		filter["programs"] = bson.M{"$elemMatch": bson.M{"name": primitive.Regex{
			Pattern: regexp.QuoteMeta(f.Program),
			Options: "i",
		}}}
	}
	return filter
}

// Narrow applies the program substring rule to fetched colleges, replacing
// each program list with the matching subset and dropping colleges left with
// no programs. Without this pass a matching college would leak its
// non-matching sibling programs to the client.
func (f CollegeFilter) Narrow(colleges []model.College) []model.College {
	if f.Program == "" {
		return colleges
	}

	needle := strings.ToLower(f.Program)
	narrowed := make([]model.College, 0, len(colleges))
	for _, college := range colleges {
		var matched []model.Program
		for _, p := range college.Programs {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			continue
		}
		college.Programs = matched
		narrowed = append(narrowed, college)
	}
	return narrowed
}
