package handler

const (
	textWelcome = "Привет 💄\nЯ помогу подобрать макияж, который подойдёт <b>именно тебе</b>.\nЭто займёт не больше <b>2 минут</b> ✨"
	textHelp    = "Команды:\n/start – начать подбор макияжа\n/restart – пройти вопросы заново\n/my – показать сохранённый план\n/stop – отключить ежедневные советы\n/help – эта подсказка"
	textUnknown = "Я не поняла команду. Нажми /start или /help."

	textNoResult     = "Пока нет сохранённого результата. Нажми /start и пройди подбор 💄"
	textSavedPrefix  = "💾 <b>Твой сохранённый план:</b>\n\n"
	textSaved        = "Готово! Я сохранила твой план 💾\nНапиши /my, чтобы посмотреть его в любой момент."
	textRedoQuiz     = "Не нашла твоих ответов. Пройди подбор ещё раз через /start 💄"
	textStaleAnswer  = "Этот вопрос уже позади. Ответь на последний вопрос или начни заново: /restart"
	textTipsOffer    = "Хочешь получать <b>1 короткий совет по макияжу в день</b>?\nБез воды, только полезное 💄"
	textTipsOn       = "Супер! Буду присылать 1 совет в день ✨\nОтключить можно командой /stop."
	textTipsLater    = "Хорошо 🙂 Если захочешь позже, нажми «Получать советы» в результате."
	textTipsOff      = "Окей! Ежедневные советы отключены. Если захочешь снова, нажми «Получать советы» 💄"
	textJoinChannel  = "Чтобы получать советы, подпишись на канал %s и нажми «Да, хочу» ещё раз 💌"
	textStorageError = "Что-то пошло не так. Попробуй ещё раз чуть позже 🙏"
)
