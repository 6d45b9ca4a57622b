package tools

import (
	"net/url"
	"strings"

	"github.com/roivaz/biogrid-mcp/internal/biogrid"
)

func interactionParams(args InteractionArgs, kind InteractionType) (url.Values, error) {
	q := biogrid.InteractionQuery{
		GeneList:           args.Gene,
		IncludeInteractors: true,
		TaxID:              args.TaxonID,
		Max:                resultCap(args.MaxResults, defaultInteractionMax),
	}
	if isNumericID(args.Gene) {
		q.SearchIDs = true
	} else {
		q.SearchNames = true
	}
	applyTypeFilter(&q, kind)
	return q.Values()
}

func geneSearchParams(args GeneSearchArgs) (url.Values, error) {
	q := biogrid.GeneQuery{
		GeneList:       args.Query,
		SearchNames:    true,
		SearchSynonyms: true,
		TaxID:          args.TaxonID,
		Max:            resultCap(args.MaxResults, defaultGeneMax),
	}
	return q.Values()
}

// exportParams restricts the query to interactions strictly among ids.
func exportParams(args ExportArgs) (url.Values, error) {
	q := biogrid.InteractionQuery{
		GeneList:           strings.Join(args.BiogridIDs, "|"),
		SearchBiogridIDs:   true,
		IncludeInteractors: false,
		Max:                exportMax,
	}
	applyTypeFilter(&q, InteractionType(args.InteractionType))
	return q.Values()
}

// applyTypeFilter sets the system type filter together with the inter-species
// exclusion flag; upstream has always received both as a pair.
// TODO: confirm with BioGRID whether interSpeciesExcluded should stay coupled to the type filter.
func applyTypeFilter(q *biogrid.InteractionQuery, kind InteractionType) {
	if kind == TypeAll || kind == "" {
		return
	}
	q.SystemType = string(kind)
	q.InterSpeciesExcluded = true
}

func resultCap(requested *int, fallback int) int {
	if requested == nil {
		return fallback
	}
	return *requested
}

func isNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
