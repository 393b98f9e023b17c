// services/questions.go - Fixed question bank, ten questions per module
package services

import "eduplay/models"

var questionBank = map[string][]models.Question{
	models.ModuleMathematics: {
		{Text: "What is 15 + 27?", Options: []string{"32", "42", "52", "62"}, Correct: 1},
		{Text: "What is 8 × 7?", Options: []string{"54", "56", "58", "60"}, Correct: 1},
		{Text: "What is 100 - 45?", Options: []string{"45", "50", "55", "60"}, Correct: 2},
		{Text: "What is 12 ÷ 4?", Options: []string{"2", "3", "4", "5"}, Correct: 1},
		{Text: "What is the next number: 2, 4, 6, 8, __?", Options: []string{"9", "10", "11", "12"}, Correct: 1},
		{Text: "What is 25 + 35?", Options: []string{"50", "55", "60", "65"}, Correct: 2},
		{Text: "If you have 3 bags with 5 apples each, how many apples?", Options: []string{"10", "12", "15", "18"}, Correct: 2},
		{Text: "What is 9 × 9?", Options: []string{"72", "81", "90", "99"}, Correct: 1},
		{Text: "What is half of 50?", Options: []string{"20", "25", "30", "35"}, Correct: 1},
		{Text: "What is 144 ÷ 12?", Options: []string{"10", "11", "12", "13"}, Correct: 2},
	},
	models.ModuleEnglish: {
		{Text: "What is the plural of \"child\"?", Options: []string{"childs", "children", "childrens", "childer"}, Correct: 1},
		{Text: "Which word is a verb?", Options: []string{"happy", "run", "beautiful", "cat"}, Correct: 1},
		{Text: "What is the opposite of \"hot\"?", Options: []string{"warm", "cool", "cold", "freezing"}, Correct: 2},
		{Text: "Which sentence is correct?", Options: []string{"She go to school", "She goes to school", "She going to school", "She gone to school"}, Correct: 1},
		{Text: "What is a synonym for \"happy\"?", Options: []string{"sad", "angry", "joyful", "tired"}, Correct: 2},
		{Text: "Which word is an adjective?", Options: []string{"quickly", "run", "beautiful", "eat"}, Correct: 2},
		{Text: "What is the past tense of \"eat\"?", Options: []string{"eated", "ate", "eaten", "eating"}, Correct: 1},
		{Text: "Which word rhymes with \"cat\"?", Options: []string{"dog", "hat", "cup", "pen"}, Correct: 1},
		{Text: "What is the plural of \"mouse\"?", Options: []string{"mouses", "mice", "mouse", "meese"}, Correct: 1},
		{Text: "Which is a complete sentence?", Options: []string{"Running fast", "The dog barks", "In the park", "Very happy"}, Correct: 1},
	},
	models.ModuleGeneralKnowledge: {
		{Text: "What is the largest planet in our solar system?", Options: []string{"Earth", "Mars", "Jupiter", "Saturn"}, Correct: 2},
		{Text: "How many continents are there?", Options: []string{"5", "6", "7", "8"}, Correct: 2},
		{Text: "What color is made by mixing red and blue?", Options: []string{"Green", "Purple", "Orange", "Brown"}, Correct: 1},
		{Text: "How many days are in a week?", Options: []string{"5", "6", "7", "8"}, Correct: 2},
		{Text: "What do bees make?", Options: []string{"Milk", "Honey", "Butter", "Cheese"}, Correct: 1},
		{Text: "Which animal is \"King of the Jungle\"?", Options: []string{"Tiger", "Elephant", "Lion", "Bear"}, Correct: 2},
		{Text: "What is the capital of France?", Options: []string{"London", "Paris", "Rome", "Berlin"}, Correct: 1},
		{Text: "How many legs does a spider have?", Options: []string{"6", "8", "10", "12"}, Correct: 1},
		{Text: "What do plants need to make food?", Options: []string{"Darkness", "Sunlight", "Snow", "Wind"}, Correct: 1},
		{Text: "Which season comes after winter?", Options: []string{"Summer", "Fall", "Spring", "Autumn"}, Correct: 2},
	},
}

// QuizQuestions returns the question list for a module, or false for an
// unknown module.
func QuizQuestions(module string) ([]models.Question, bool) {
	questions, ok := questionBank[module]
	return questions, ok
}
