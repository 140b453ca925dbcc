package textnorm

// Entry maps one spoken number word to its digit string.
type Entry struct {
	Word  string
	Digit string
}

// Lexicon is a per-language table of spoken number words, cardinal and
// ordinal, in the grammatical cases voice actors actually produce.
// Languages without a lexicon simply get no number folding.
type Lexicon struct {
	Language string
	Entries  []Entry
}

// DefaultLexicons returns the built-in lexicons.
func DefaultLexicons() []Lexicon {
	return []Lexicon{Russian(), Ukrainian()}
}

// Russian covers cardinals 0-10 plus selected larger values, and
// ordinals 1-10 in several case forms.
func Russian() Lexicon {
	return Lexicon{
		Language: "ru",
		Entries: []Entry{
			// Cardinals
			{"нуль", "0"}, {"нулю", "0"}, {"ноль", "0"},
			{"один", "1"}, {"одна", "1"}, {"одного", "1"}, {"одному", "1"},
			{"два", "2"}, {"две", "2"}, {"двум", "2"},
			{"три", "3"}, {"трем", "3"}, {"трём", "3"},
			{"четыре", "4"}, {"четырем", "4"},
			{"пять", "5"}, {"пяти", "5"},
			{"шесть", "6"}, {"шести", "6"},
			{"семь", "7"}, {"семи", "7"},
			{"восемь", "8"}, {"восьми", "8"},
			{"девять", "9"}, {"девяти", "9"},
			{"десять", "10"}, {"десяти", "10"},
			{"двадцать", "20"}, {"двадцати", "20"},
			{"тридцать", "30"}, {"сорок", "40"}, {"пятьдесят", "50"},
			{"сто", "100"}, {"тысяча", "1000"},
			// Ordinals
			{"первый", "1"}, {"первая", "1"}, {"первого", "1"}, {"первому", "1"}, {"первом", "1"},
			{"второй", "2"}, {"вторая", "2"}, {"второго", "2"}, {"второму", "2"}, {"втором", "2"},
			{"третий", "3"}, {"третья", "3"}, {"третьего", "3"}, {"третьему", "3"}, {"третьем", "3"},
			{"четвёртый", "4"}, {"четвертый", "4"}, {"четвёртая", "4"}, {"четвертая", "4"},
			{"пятый", "5"}, {"пятая", "5"}, {"пятого", "5"},
			{"шестой", "6"}, {"шестая", "6"}, {"шестого", "6"},
			{"седьмой", "7"}, {"седьмая", "7"}, {"седьмого", "7"},
			{"восьмой", "8"}, {"восьмая", "8"}, {"восьмого", "8"},
			{"девятый", "9"}, {"девятая", "9"}, {"девятого", "9"},
			{"десятый", "10"}, {"десятая", "10"}, {"десятого", "10"},
		},
	}
}

// Ukrainian covers cardinals 0-10 plus selected larger values, and
// ordinals 1-10.
func Ukrainian() Lexicon {
	return Lexicon{
		Language: "uk",
		Entries: []Entry{
			// Cardinals
			{"нуль", "0"}, {"нулю", "0"},
			{"один", "1"}, {"одна", "1"}, {"одне", "1"}, {"одного", "1"},
			{"два", "2"}, {"дві", "2"}, {"двох", "2"},
			{"три", "3"}, {"трьох", "3"},
			{"чотири", "4"}, {"чотирьох", "4"},
			{"п'ять", "5"}, {"п'яти", "5"},
			{"шість", "6"}, {"шести", "6"},
			{"сім", "7"}, {"семи", "7"},
			{"вісім", "8"}, {"восьми", "8"},
			{"дев'ять", "9"}, {"дев'яти", "9"},
			{"десять", "10"}, {"десяти", "10"},
			{"двадцять", "20"}, {"двадцяти", "20"},
			{"тридцять", "30"}, {"сорок", "40"}, {"п'ятдесят", "50"},
			{"сто", "100"}, {"тисяча", "1000"},
			// Ordinals
			{"перший", "1"}, {"перша", "1"}, {"першого", "1"}, {"першому", "1"},
			{"другий", "2"}, {"друга", "2"}, {"другого", "2"}, {"другому", "2"},
			{"третій", "3"}, {"третя", "3"}, {"третього", "3"},
			{"четвертий", "4"}, {"четверта", "4"}, {"четвертого", "4"},
			{"п'ятий", "5"}, {"п'ята", "5"}, {"п'ятого", "5"},
			{"шостий", "6"}, {"шоста", "6"}, {"шостого", "6"},
			{"сьомий", "7"}, {"сьома", "7"}, {"сьомого", "7"},
			{"восьмий", "8"}, {"восьма", "8"}, {"восьмого", "8"},
			{"дев'ятий", "9"}, {"дев'ята", "9"}, {"дев'ятого", "9"},
			{"десятий", "10"}, {"десята", "10"}, {"десятого", "10"},
		},
	}
}
