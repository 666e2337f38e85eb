package bank

import "strings"

type Language string

const (
	JavaScript Language = "JavaScript"
	Python     Language = "Python"
	Java       Language = "Java"
	Cpp        Language = "C++"
	React      Language = "React"
	NodeJS     Language = "Node.js"
)

var AllLanguages = []Language{
	JavaScript,
	Python,
	Java,
	Cpp,
	React,
	NodeJS,
}

func (l Language) IsValid() bool {
	for _, v := range AllLanguages {
		if l == v {
			return true
		}
	}
	return false
}

// ParseLanguage matches a language name case-insensitively.
func ParseLanguage(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	for _, v := range AllLanguages {
		if strings.EqualFold(name, string(v)) {
			return v, true
		}
	}
	return "", false
}

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}
