package dictionary

const kittenBody = `[{
	"word": "kitten",
	"phonetic": "/ˈkɪtən/",
	"phonetics": [
		{"text": "/ˈkɪtən/", "audio": "https://api.dictionaryapi.dev/media/pronunciations/en/kitten-us.mp3"}
	],
	"origin": "late Middle English",
	"meanings": [
		{
			"partOfSpeech": "noun",
			"definitions": [
				{"definition": "A young cat.", "example": "The kitten chased the yarn.", "synonyms": [], "antonyms": []}
			]
		}
	]
}]`

const latinoBody = `[{
	"word": "latino",
	"phonetics": [],
	"meanings": [
		{
			"partOfSpeech": "noun",
			"definitions": [
				{"definition": "A person of Latin American origin.", "synonyms": [], "antonyms": []}
			]
		}
	]
}]`

const notFoundBody = `{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for.","resolution":"You can try the search again at later time or head to the web instead."}`
