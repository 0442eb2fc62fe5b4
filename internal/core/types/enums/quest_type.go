package enums

import "strings"

type QuestType uint8

const (
	QuestTypeUnknown QuestType = iota
	QuestTypeMain
	QuestTypeSide
	QuestTypeSecret
)

var questTypeToString = map[QuestType]string{
	QuestTypeMain:   "main",
	QuestTypeSide:   "side",
	QuestTypeSecret: "secret",
}

var questTypeStringToType = map[string]QuestType{
	"main":   QuestTypeMain,
	"side":   QuestTypeSide,
	"secret": QuestTypeSecret,
}

func (q QuestType) String() string {
	if val, ok := questTypeToString[q]; ok {
		return val
	}
	return "unknown"
}

func ParseQuestType(s string) QuestType {
	if val, ok := questTypeStringToType[strings.ToLower(s)]; ok {
		return val
	}
	return QuestTypeUnknown
}

func (q QuestType) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (q *QuestType) UnmarshalText(b []byte) error {
	*q = ParseQuestType(string(b))
	return nil
}
