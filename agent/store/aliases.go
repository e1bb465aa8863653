package store

import "strings"

// Retail department aliases: a single search term should hit every label a
// store actually uses for that area.
var retailAliases = map[string][]string{
	"meat":        {"meat", "meats", "butcher", "protein"},
	"meats":       {"meat", "meats", "butcher", "protein"},
	"produce":     {"produce", "fruits", "vegetables", "fresh"},
	"deli":        {"deli", "delicatessen", "prepared foods"},
	"bakery":      {"bakery", "bread", "baked goods"},
	"dairy":       {"dairy", "milk", "cheese", "refrigerated"},
	"frozen":      {"frozen", "freezer", "ice cream"},
	"grocery":     {"grocery", "center store", "dry grocery"},
	"hba":         {"hba", "health", "beauty", "pharmacy", "otc"},
	"gm":          {"gm", "general merchandise", "hardlines"},
	"apparel":     {"apparel", "clothing", "softlines", "fashion"},
	"electronics": {"electronics", "wireless", "photo", "entertainment"},
	"sporting":    {"sporting", "sports", "outdoor", "fitness"},
	"automotive":  {"automotive", "auto", "tires", "tle"},
	"garden":      {"garden", "lawn", "outdoor living", "seasonal"},
	"pets":        {"pets", "pet", "animal"},
	"baby":        {"baby", "infant", "kids"},
	"toys":        {"toys", "toy", "games"},
	"home":        {"home", "housewares", "domestics", "furniture"},
	"pharmacy":    {"pharmacy", "rx", "pharmacist"},
	"optical":     {"optical", "vision", "glasses"},
	"ogp":         {"ogp", "online grocery", "pickup", "delivery", "digital"},
	"frontend":    {"frontend", "front end", "cashier", "self checkout", "sco"},
	"claims":      {"claims", "receiving", "backroom"},
	"inventory":   {"inventory", "inv", "counts", "on hand"},
	"fresh":       {"fresh", "perishables", "produce", "meat", "deli", "bakery"},
	"cap":         {"cap", "stocking", "freight"},
	"ap":          {"ap", "asset protection", "security", "loss prevention"},
	"people":      {"people", "hr", "human resources", "personnel", "associate"},
	"ops":         {"ops", "operations", "store ops"},
	"coach":       {"coach", "team lead", "tl", "supervisor"},
	"manager":     {"manager", "mgr", "asm", "store manager", "sm"},
}

// searchVariants folds plurals and expands retail aliases so one term spans
// every real-world label variant. Order is preserved; duplicates dropped.
func searchVariants(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	variants := []string{term}
	switch {
	case strings.HasSuffix(term, "ies"):
		variants = append(variants, term[:len(term)-3]+"y")
	case strings.HasSuffix(term, "es"):
		variants = append(variants, term[:len(term)-2], term[:len(term)-1])
	case strings.HasSuffix(term, "s") && len(term) > 2:
		variants = append(variants, term[:len(term)-1])
	}
	if !strings.HasSuffix(term, "s") {
		variants = append(variants, term+"s")
	}

	for _, aliases := range retailAliases {
		matched := false
		for _, alias := range aliases {
			if term == alias || strings.Contains(alias, term) {
				matched = true
				break
			}
		}
		if matched {
			variants = append(variants, aliases...)
		}
	}

	seen := make(map[string]struct{}, len(variants))
	unique := variants[:0]
	for _, v := range variants {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}
