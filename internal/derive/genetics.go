package derive

import (
	"strings"

	"github.com/riskfacts/riskfacts/internal/ruleset"
	"github.com/riskfacts/riskfacts/internal/standardize"
)

// deriveGenetics classifies reported variants against the penetrance gene
// lists. Matching is fuzzy substring matching because free-text gene entries
// often embed syndrome names ("Lynch syndrome (MSH2)"). MUTYH branches on
// biallelic vs monoallelic status.
func deriveGenetics(gen standardize.Genetics, cfg ruleset.GeneticsConfig) *GeneticsFacts {
	if !gen.Tested && len(gen.Genes) == 0 && gen.PRS.Band == "" && !gen.PRS.RedFlags {
		return nil
	}
	facts := &GeneticsFacts{Tested: gen.Tested}

	for _, raw := range gen.Genes {
		entry := strings.ToUpper(strings.TrimSpace(raw))
		if entry == "" {
			continue
		}
		matched := false
		if geneMatch(entry, "MUTYH") {
			matched = true
			if biallelic(entry, gen.VariantSelfStatus) {
				facts.HighPenetrance = true
				facts.Polyposis = true
			} else {
				facts.ModeratePenetrance = true
			}
		}
		for _, gene := range cfg.HighPenetrance {
			if geneMatch(entry, gene) {
				facts.HighPenetrance = true
				matched = true
			}
		}
		for _, gene := range cfg.Moderate {
			if geneMatch(entry, gene) {
				facts.ModeratePenetrance = true
				matched = true
			}
		}
		for _, gene := range cfg.Lynch {
			if geneMatch(entry, gene) {
				facts.LynchSyndrome = true
				matched = true
			}
		}
		if strings.Contains(entry, "LYNCH") {
			facts.LynchSyndrome = true
			matched = true
		}
		for _, gene := range cfg.Polyposis {
			if gene == "MUTYH" {
				continue
			}
			if geneMatch(entry, gene) {
				facts.Polyposis = true
				matched = true
			}
		}
		if matched {
			facts.MatchedGenes = append(facts.MatchedGenes, entry)
		}
	}

	if gen.PRS.RedFlags {
		facts.PRSElevated = true
	} else {
		band := strings.ToLower(gen.PRS.Band)
		for _, elevated := range cfg.PRSElevatedBands {
			if band == elevated {
				facts.PRSElevated = true
				break
			}
		}
	}
	return facts
}

func geneMatch(entry, gene string) bool {
	return strings.Contains(entry, strings.ToUpper(gene))
}

func biallelic(entry, variantStatus string) bool {
	status := strings.ToLower(variantStatus)
	return strings.Contains(entry, "BIALLELIC") ||
		strings.Contains(status, "biallelic") ||
		strings.Contains(status, "homozygous")
}
