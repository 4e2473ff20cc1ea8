package tokenizer

type direction int

const (
	forward direction = iota
	backward
)

const (
	narrowRun = 0
	wideRun   = 1
)

// scanTable maps (direction, mode, encoding width, first char class) to the
// routine that scans the token. Both directions live side by side so they can
// be compared row for row.
//
// Backward Preformatted uses scanPreDataB for narrow runs as well; forward has
// a dedicated narrow routine.
var scanTable = [2][3][2][numClasses]scanFunc{
	forward: {
		ModeNormal: {
			narrowRun: {
				classText:         (*Tokenizer).scanNormalAsciiTextF,
				classSpace:        (*Tokenizer).scanNormalWhiteSpaceF,
				classTabOrNewline: (*Tokenizer).scanNormalWhiteSpaceF,
			},
			wideRun: {
				classText:         (*Tokenizer).scanNormalUnicodeTextF,
				classSpace:        (*Tokenizer).scanNormalWhiteSpaceF,
				classTabOrNewline: (*Tokenizer).scanNormalWhiteSpaceF,
			},
		},
		ModePreformatted: {
			narrowRun: {
				classText:         (*Tokenizer).scanPreAsciiDataF,
				classSpace:        (*Tokenizer).scanPreAsciiDataF,
				classTabOrNewline: (*Tokenizer).scanSingleCharF,
			},
			wideRun: {
				classText:         (*Tokenizer).scanPreDataF,
				classSpace:        (*Tokenizer).scanPreDataF,
				classTabOrNewline: (*Tokenizer).scanSingleCharF,
			},
		},
		ModePreWrap: {
			narrowRun: {
				classText:         (*Tokenizer).scanNormalAsciiTextF,
				classSpace:        (*Tokenizer).scanPreWrapWhiteSpaceF,
				classTabOrNewline: (*Tokenizer).scanSingleCharF,
			},
			wideRun: {
				classText:         (*Tokenizer).scanNormalUnicodeTextF,
				classSpace:        (*Tokenizer).scanPreWrapWhiteSpaceF,
				classTabOrNewline: (*Tokenizer).scanSingleCharF,
			},
		},
	},
	backward: {
		ModeNormal: {
			narrowRun: {
				classText:         (*Tokenizer).scanNormalAsciiTextB,
				classSpace:        (*Tokenizer).scanNormalWhiteSpaceB,
				classTabOrNewline: (*Tokenizer).scanNormalWhiteSpaceB,
			},
			wideRun: {
				classText:         (*Tokenizer).scanNormalUnicodeTextB,
				classSpace:        (*Tokenizer).scanNormalWhiteSpaceB,
				classTabOrNewline: (*Tokenizer).scanNormalWhiteSpaceB,
			},
		},
		ModePreformatted: {
			narrowRun: {
				classText:         (*Tokenizer).scanPreDataB,
				classSpace:        (*Tokenizer).scanPreDataB,
				classTabOrNewline: (*Tokenizer).scanSingleCharB,
			},
			wideRun: {
				classText:         (*Tokenizer).scanPreDataB,
				classSpace:        (*Tokenizer).scanPreDataB,
				classTabOrNewline: (*Tokenizer).scanSingleCharB,
			},
		},
		ModePreWrap: {
			narrowRun: {
				classText:         (*Tokenizer).scanNormalAsciiTextB,
				classSpace:        (*Tokenizer).scanPreWrapWhiteSpaceB,
				classTabOrNewline: (*Tokenizer).scanSingleCharB,
			},
			wideRun: {
				classText:         (*Tokenizer).scanNormalUnicodeTextB,
				classSpace:        (*Tokenizer).scanPreWrapWhiteSpaceB,
				classTabOrNewline: (*Tokenizer).scanSingleCharB,
			},
		},
	},
}

func lookupScan(dir direction, mode Mode, wide bool, first rune) scanFunc {
	width := narrowRun
	if wide {
		width = wideRun
	}
	return scanTable[dir][mode][width][classify(first)]
}
