package stats

import (
	"fmt"
	"hash/fnv"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// languageColors mirrors the common GitHub linguist colors
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"R":          "#198CE7",
	"Shell":      "#89e051",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Vue":        "#41b883",
	"Svelte":     "#ff3e00",
	"Scala":      "#c22d40",
	"Elixir":     "#6e4a7e",
	"Clojure":    "#db5855",
	"Haskell":    "#5e5086",
	"Lua":        "#000080",
	"Perl":       "#0298c3",
	"Objective":  "#438eff",
}

// LanguageColor returns the linguist color for a language, or a stable
// hash derived color for languages outside the table
func LanguageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return fmt.Sprintf("#%06x", h.Sum32()&0xffffff)
}

// MergeLanguageBytes folds per repository language byte maps into one total
func MergeLanguageBytes(perRepo []map[string]int64) map[string]int64 {
	total := map[string]int64{}
	for _, langs := range perRepo {
		for name, bytes := range langs {
			total[name] += bytes
		}
	}
	return total
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// displayName keeps known linguist names untouched and title cases the rest
func displayName(name string) string {
	if _, ok := languageColors[name]; ok {
		return name
	}
	return titleCaser.String(name)
}

// BuildLanguageStats converts a byte distribution into percentage slices,
// sorted largest first
func BuildLanguageStats(byteCounts map[string]int64) []LanguageStat {
	var totalBytes int64
	for _, b := range byteCounts {
		totalBytes += b
	}

	out := make([]LanguageStat, 0, len(byteCounts))
	for name, bytes := range byteCounts {
		pct := 0.0
		if totalBytes > 0 {
			pct = float64(bytes) / float64(totalBytes) * 100
		}
		out = append(out, LanguageStat{Name: displayName(name), Bytes: bytes, Percentage: pct, Color: LanguageColor(name)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Name < out[j].Name
	})
	return out
}
