package model

// AdviceInfo contains metadata about a weakness kind including the strength
// ceiling it implies, an impact description, and a remediation recommendation.
type AdviceInfo struct {
	Level          StrengthLevel
	Impact         string
	Recommendation string
}

// adviceInfoMapping maps weakness kinds to their metadata. Kinds originate
// from estimator match patterns (dictionary, spatial, repeat, sequence, date,
// bruteforce) and from passaudit's own checks (user_input, too_short, ...).
//
// Design decision: We use a map rather than embedding advice in each
// estimator because:
// 1. It keeps every estimator's findings phrased consistently
// 2. It provides a single source of truth for advisory text
// 3. It makes it easy to generate remediation documentation
var adviceInfoMapping = map[string]AdviceInfo{
	// VERY WEAK - crackable in moments
	"dictionary_passwords": {
		Level:          LevelVeryWeak,
		Impact:         "The password is one of the most commonly used passwords and will fall to any cracking attempt within seconds.",
		Recommendation: "Replace it entirely. Avoid anything that appears in leaked password lists.",
	},
	"user_input": {
		Level:          LevelVeryWeak,
		Impact:         "The password contains personal information supplied as context. Targeted wordlists built from such details crack it almost immediately.",
		Recommendation: "Remove names, pets, birthdays, and other personal details from the password.",
	},
	"too_short": {
		Level:          LevelVeryWeak,
		Impact:         "Short passwords have a tiny search space regardless of character variety.",
		Recommendation: "Use at least 12 characters. Length beats complexity.",
	},

	// WEAK - survives only casual guessing
	"dictionary": {
		Level:          LevelWeak,
		Impact:         "The password is built around a dictionary word. Wordlist attacks try these before anything else.",
		Recommendation: "Avoid single words. Combine several unrelated words or use a generated passphrase.",
	},
	"dictionary_names": {
		Level:          LevelWeak,
		Impact:         "The password is built around a common personal name, a staple of every cracking wordlist.",
		Recommendation: "Avoid names of any kind, including with numbers or symbols appended.",
	},
	"spatial": {
		Level:          LevelWeak,
		Impact:         "Keyboard walks like qwerty or zxcvbn are among the first patterns cracking tools try.",
		Recommendation: "Avoid rows and columns of adjacent keys, even with shifts mixed in.",
	},
	"repeat": {
		Level:          LevelWeak,
		Impact:         "Repeated characters or groups add length without adding guessing effort.",
		Recommendation: "Avoid repeats like aaa or abcabc. Each character should add entropy.",
	},
	"sequence": {
		Level:          LevelWeak,
		Impact:         "Sequences like abcdef or 1234 are predictable and cheap to enumerate.",
		Recommendation: "Avoid ascending or descending runs of letters and digits.",
	},
	"date": {
		Level:          LevelWeak,
		Impact:         "Dates and years are guessed early, especially recent years and birthdays.",
		Recommendation: "Avoid dates that relate to you. A random suffix is no substitute for length.",
	},
	"leet": {
		Level:          LevelWeak,
		Impact:         "Predictable substitutions like @ for a or 3 for e are reversed automatically by cracking tools.",
		Recommendation: "Substitutions do not make a weak base word strong. Start from a longer base.",
	},

	// FAIR - acceptable structure, improvable
	"single_class": {
		Level:          LevelFair,
		Impact:         "A single character class shrinks the search space an attacker must cover.",
		Recommendation: "Mix upper case, digits, or symbols, or compensate with extra length.",
	},
	"digits_only": {
		Level:          LevelFair,
		Impact:         "Digit-only passwords have only ten symbols per position and fall quickly to brute force.",
		Recommendation: "Add letters and symbols, or use a much longer PIN-style secret.",
	},
	"no_symbols": {
		Level:          LevelFair,
		Impact:         "Alphanumeric-only passwords are weaker than the same length drawn from the full printable set.",
		Recommendation: "Add a symbol or two, or extend the length by a few characters.",
	},
	"bruteforce": {
		Level:          LevelFair,
		Impact:         "Part of the password has no recognizable pattern, which is good; its strength rests on length alone.",
		Recommendation: "Longer is stronger. Consider extending the unstructured part.",
	},
}

// GetAdviceInfo returns the advisory metadata for a weakness kind.
// Returns a neutral default if the kind is not in the mapping, so new
// estimator pattern kinds degrade gracefully instead of vanishing.
func GetAdviceInfo(kind string) AdviceInfo {
	if info, ok := adviceInfoMapping[kind]; ok {
		return info
	}
	return AdviceInfo{
		Level:          LevelFair,
		Impact:         "An unrecognized pattern was matched in the password.",
		Recommendation: "Prefer long, unpredictable passphrases over patterned passwords.",
	}
}
