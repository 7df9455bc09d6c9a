package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexIllegalToken       Code = 1001
	LexUnterminatedString Code = 1002

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynMalformedHashColor    Code = 2002
	SynOperatorSpacing       Code = 2003
	SynEmptyFunctionArgument Code = 2004

	// I/O
	IOLoadFileError Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		LexInfo:                  "Lexical information",
		LexIllegalToken:          "Illegal token",
		LexUnterminatedString:    "Unterminated string",
		SynInfo:                  "Syntax information",
		SynUnexpectedToken:       "Unexpected token",
		SynMalformedHashColor:    "Malformed hash color",
		SynOperatorSpacing:       "Operator requires surrounding whitespace",
		SynEmptyFunctionArgument: "Empty function argument",
		IOLoadFileError:          "I/O load file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
