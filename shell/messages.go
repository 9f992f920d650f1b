package shell

const (
	msgGuessWord      = "Угадайте слово"
	msgEnterGuess     = "Введите букву или всё слово: "
	msgInvalidGuess   = "Ошибка. Введите только %s: "
	msgAlreadyGuessed = "Вы уже вводили эту букву."
	msgRepeatedMiss   = "Вы уже ошибались с этой буквой."
	msgNoSuchLetter   = "Такой буквы нет."
	msgWrongWord      = "Неверное слово."
	msgWon            = "Поздравляем! Вы угадали слово: "
	msgLost           = "Вы проиграли. Слово было: "
	msgPlayAgain      = "Сыграть ещё раз? (да/нет): "
	msgFarewell       = "До свидания!"
)
