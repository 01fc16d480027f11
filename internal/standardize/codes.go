package standardize

import "strings"

// Static vocabulary tables mapping the free-text spellings questionnaire
// versions have used onto canonical codes. Unmapped values pass through as
// free text so a new spelling degrades to "unknown code", never to a dropped
// answer.

var cancerTypeCodes = map[string]string{
	"breast":                 "breast",
	"breast cancer":          "breast",
	"ovarian":                "ovarian",
	"ovary":                  "ovarian",
	"ovarian cancer":         "ovarian",
	"colorectal":             "colorectal",
	"colon":                  "colorectal",
	"rectal":                 "colorectal",
	"bowel":                  "colorectal",
	"colorectal cancer":      "colorectal",
	"prostate":               "prostate",
	"prostate cancer":        "prostate",
	"pancreatic":             "pancreatic",
	"pancreas":               "pancreatic",
	"stomach":                "stomach",
	"gastric":                "stomach",
	"endometrial":            "endometrial",
	"uterine":                "endometrial",
	"uterus":                 "endometrial",
	"womb":                   "endometrial",
	"cervical":               "cervical",
	"cervix":                 "cervical",
	"lung":                   "lung",
	"lung cancer":            "lung",
	"melanoma":               "melanoma",
	"skin":                   "melanoma",
	"leukemia":               "leukemia",
	"leukaemia":              "leukemia",
	"lymphoma":               "lymphoma",
	"sarcoma":                "sarcoma",
	"brain":                  "cns",
	"brain tumor":            "cns",
	"brain tumour":           "cns",
	"cns":                    "cns",
	"small bowel":            "small_bowel",
	"small intestine":        "small_bowel",
	"bladder":                "urinary_tract",
	"kidney":                 "urinary_tract",
	"renal":                  "urinary_tract",
	"ureter":                 "urinary_tract",
	"urinary tract":          "urinary_tract",
	"bile duct":              "biliary",
	"biliary":                "biliary",
	"gallbladder":            "biliary",
	"liver":                  "liver",
	"hepatocellular":         "liver",
	"thyroid":                "thyroid",
	"testicular":             "testicular",
	"childhood cancer":       "childhood",
	"esophageal":             "esophageal",
	"oesophageal":            "esophageal",
	"esophagus":              "esophageal",
}

var relationCodes = map[string]string{
	"mother":               "mother",
	"mom":                  "mother",
	"father":               "father",
	"dad":                  "father",
	"sister":               "sister",
	"brother":              "brother",
	"daughter":             "daughter",
	"son":                  "son",
	"maternal grandmother": "maternal_grandmother",
	"maternal grandfather": "maternal_grandfather",
	"maternal aunt":        "maternal_aunt",
	"maternal uncle":       "maternal_uncle",
	"paternal grandmother": "paternal_grandmother",
	"paternal grandfather": "paternal_grandfather",
	"paternal aunt":        "paternal_aunt",
	"paternal uncle":       "paternal_uncle",
	"grandmother":          "grandmother",
	"grandfather":          "grandfather",
	"aunt":                 "aunt",
	"uncle":                "uncle",
	"cousin":               "cousin",
	"half sister":          "half_sister",
	"half brother":         "half_brother",
	"niece":                "niece",
	"nephew":               "nephew",
}

var illnessCodes = map[string]string{
	"hepatitis b":              "hepatitis_b",
	"hep b":                    "hepatitis_b",
	"hepatitis c":              "hepatitis_c",
	"hep c":                    "hepatitis_c",
	"cirrhosis":                "cirrhosis",
	"ulcerative colitis":       "ulcerative_colitis",
	"crohn's disease":          "crohns",
	"crohns":                   "crohns",
	"crohn":                    "crohns",
	"inflammatory bowel disease": "ibd",
	"ibd":                      "ibd",
	"primary sclerosing cholangitis": "psc",
	"psc":                      "psc",
	"barrett's esophagus":      "barretts",
	"barretts esophagus":       "barretts",
	"barretts":                 "barretts",
	"diabetes":                 "diabetes",
	"type 2 diabetes":          "diabetes",
	"copd":                     "copd",
	"asthma":                   "asthma",
	"heart disease":            "heart_disease",
	"chronic kidney disease":   "ckd",
	"ckd":                      "ckd",
	"organ transplant":         "organ_transplant",
	"transplant":               "organ_transplant",
	"immunosuppressive therapy": "immunosuppressive_therapy",
	"immunosuppression":        "immunosuppressive_therapy",
	"hiv":                      "hiv",
}

var hazardCodes = map[string]string{
	"asbestos":         "asbestos",
	"silica":           "silica",
	"crystalline silica": "silica",
	"diesel":           "diesel_exhaust",
	"diesel exhaust":   "diesel_exhaust",
	"diesel fumes":     "diesel_exhaust",
	"radon":            "radon",
	"arsenic":          "arsenic",
	"chromium":         "chromium",
	"chromium vi":      "chromium",
	"nickel":           "nickel",
	"beryllium":        "beryllium",
	"cadmium":          "cadmium",
	"aromatic amines":  "aromatic_amines",
	"benzidine":        "benzidine",
	"rubber fumes":     "rubber_fumes",
	"rubber":           "rubber_fumes",
	"paint":            "painting",
	"painting":         "painting",
	"sun":              "outdoor_uv",
	"sunlight":         "outdoor_uv",
	"outdoor work":     "outdoor_uv",
	"uv":               "outdoor_uv",
	"pah":              "pah",
	"polycyclic aromatic hydrocarbons": "pah",
	"mineral oils":     "mineral_oils",
	"benzene":          "benzene",
	"formaldehyde":     "formaldehyde",
	"ethylene oxide":   "ethylene_oxide",
	"pesticides":       "pesticides",
	"pesticide":        "pesticides",
	"wood dust":        "wood_dust",
	"sawdust":          "wood_dust",
	"leather dust":     "leather_dust",
	"leather":          "leather_dust",
	"night shift":      "night_shift",
	"night shifts":     "night_shift",
	"shift work":       "night_shift",
}

var jobTitleCodes = map[string]string{
	"miner":               "miner",
	"construction worker": "construction",
	"builder":             "construction",
	"painter":             "painter",
	"farmer":              "farmer",
	"agricultural worker":  "farmer",
	"welder":              "welder",
	"carpenter":           "carpenter",
	"joiner":              "carpenter",
	"hairdresser":         "hairdresser",
	"firefighter":         "firefighter",
	"nurse":               "nurse",
	"night shift worker":  "shift_worker",
	"shift worker":        "shift_worker",
	"mechanic":            "mechanic",
	"rubber worker":       "rubber_worker",
	"textile worker":      "textile_worker",
}

var surgeryCodes = map[string]string{
	"hysterectomy":            "hysterectomy",
	"total hysterectomy":      "hysterectomy",
	"oophorectomy":            "oophorectomy",
	"ovaries removed":         "oophorectomy",
	"salpingo-oophorectomy":   "salpingo_oophorectomy",
	"mastectomy":              "mastectomy",
	"double mastectomy":       "mastectomy",
	"bilateral mastectomy":    "mastectomy",
	"prostatectomy":           "prostatectomy",
	"prostate removed":        "prostatectomy",
}

var sexCodes = map[string]string{
	"female": "female",
	"f":      "female",
	"woman":  "female",
	"male":   "male",
	"m":      "male",
	"man":    "male",
}

var smokingStatusCodes = map[string]string{
	"never":          "never",
	"never smoked":   "never",
	"non-smoker":     "never",
	"former":         "former",
	"ex-smoker":      "former",
	"quit":           "former",
	"current":        "current",
	"smoker":         "current",
	"current smoker": "current",
}

var intensityUnitCodes = map[string]string{
	"cigarettes":         "cigarettes",
	"cigs":               "cigarettes",
	"cigarettes per day": "cigarettes",
	"pack":               "packs",
	"packs":              "packs",
	"packs per day":      "packs",
}

// mapCode resolves a raw vocabulary value to its canonical code, passing
// unmapped values through lowercased with spaces collapsed so downstream set
// membership checks stay predictable.
func mapCode(table map[string]string, raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return ""
	}
	if code, ok := table[key]; ok {
		return code
	}
	// Already-canonical codes (underscored) pass through unchanged.
	if code, ok := table[strings.ReplaceAll(key, "_", " ")]; ok {
		return code
	}
	return strings.ReplaceAll(key, " ", "_")
}
