package advice

import "MakeupBot/model"

// rule is the advice fragment for one value of one dimension.
type rule struct {
	Brief  string
	Detail string
}

// table maps the values of one dimension to rules, with a fallback for
// values outside the enumeration.
type table struct {
	Label    string
	Rules    map[string]rule
	Fallback rule
}

func (t table) lookup(value string) rule {
	if r, ok := t.Rules[value]; ok {
		return r
	}
	return t.Fallback
}

var skinTable = table{
	Label: "🧴 Кожа и база",
	Rules: map[string]rule{
		"dry": {
			Brief:  "Тон лёгкий и сияющий, на хорошо увлажнённую кожу.",
			Detail: "Начни с плотного увлажняющего крема и дай ему впитаться. Выбирай сияющий тональный флюид или кушон, пудру используй точечно. Кремовые румяна и хайлайтер не подчеркнут шелушения.",
		},
		"normal": {
			Brief:  "Подойдёт почти любой тон, выбирай по желаемому покрытию.",
			Detail: "Лёгкий праймер и тональное средство с натуральным финишем. Пудра только на Т-зону. Можно сочетать кремовые и сухие текстуры.",
		},
		"combo": {
			Brief:  "Матирующая база на Т-зону, увлажнение на щёки.",
			Detail: "Раздели лицо на зоны: на Т-зону матирующий праймер, на щёки увлажняющий. Тон с полуматовым финишем, закрепи пудрой только центр лица.",
		},
		"oily": {
			Brief:  "Матирующий праймер и стойкий тон, пудра на Т-зону.",
			Detail: "Очисти кожу и нанеси лёгкий гель-крем. Матирующий праймер, стойкий тон с матовым финишем, рассыпчатая пудра. Днём используй матирующие салфетки вместо новых слоёв пудры.",
		},
		"unknown": {
			Brief:  "Начни с лёгкого тона с натуральным финишем.",
			Detail: "Если не уверена в типе кожи, выбирай универсальные средства: лёгкий увлажняющий крем, тон с натуральным финишем, пудра точечно там, где появляется блеск.",
		},
	},
	Fallback: rule{
		Brief:  "Подготовь кожу: увлажнение и лёгкий тон.",
		Detail: "Увлажни кожу, нанеси лёгкий тон с натуральным финишем и закрепи пудрой только те зоны, где появляется блеск.",
	},
}

var toneTable = table{
	Label: "🎨 Оттенок тона",
	Rules: map[string]rule{
		"light": {
			Brief:  "Светлые фарфоровые и бежевые оттенки тона.",
			Detail: "Выбирай светлые оттенки тона и консилера на полтона светлее. Бронзер мягкий, без рыжины. Румяна нежно-розовые или персиковые.",
		},
		"medium": {
			Brief:  "Средние бежевые оттенки тона.",
			Detail: "Тон в средне-бежевой гамме, консилер на полтона светлее. Бронзер тёплый карамельный, румяна абрикосовые или розово-коралловые.",
		},
		"tan": {
			Brief:  "Насыщенные золотистые оттенки тона.",
			Detail: "Тон с насыщенным золотистым или оливковым пигментом. Бронзер шоколадный, румяна терракотовые или ягодные. Избегай слишком светлой пудры.",
		},
	},
	Fallback: rule{
		Brief:  "Тон подбирай по линии челюсти при дневном свете.",
		Detail: "Проверь оттенок тона на линии челюсти при дневном свете: правильный оттенок исчезает на коже.",
	},
}

var undertoneTable = table{
	Label: "🌡 Подтон и цвета",
	Rules: map[string]rule{
		"warm": {
			Brief:  "Тёплые персиковые, золотые и терракотовые акценты.",
			Detail: "Твоя палитра: персик, коралл, бронза, золото. Тон с жёлтым подтоном. Помада кирпичная, тёплая нюдовая или коралловая.",
		},
		"cool": {
			Brief:  "Холодные розовые, ягодные и серебристые акценты.",
			Detail: "Твоя палитра: розовый, ягодный, сливовый, серебро. Тон с розовым подтоном. Помада малиновая, холодная нюдовая или классическая синеватая красная.",
		},
		"unknown": {
			Brief:  "Нейтральные нюдовые и розово-бежевые акценты.",
			Detail: "Посмотри на вены на запястье: зелёные ближе к тёплому подтону, синие к холодному. Пока выбирай нейтральные розово-бежевые оттенки: они подходят почти всем.",
		},
	},
	Fallback: rule{
		Brief:  "Нейтральные нюдовые оттенки.",
		Detail: "Нейтральные розово-бежевые и нюдовые оттенки подходят почти всем, начни с них.",
	},
}

var eyesTable = table{
	Label: "👁 Глаза",
	Rules: map[string]rule{
		"small": {
			Brief:  "Светлые тени во внутренний уголок и тонкая стрелка.",
			Detail: "Светлые мерцающие тени во внутренний уголок и на центр века. Тонкая стрелка только от середины века, нижнюю слизистую подведи бежевым карандашом.",
		},
		"big": {
			Brief:  "Можно работать с насыщенными тенями и растушёвкой.",
			Detail: "Большим глазам идут насыщенные матовые оттенки и растушёвка по складке. Можно подводить нижнее веко, не уменьшая глаза визуально.",
		},
		"hooded": {
			Brief:  "Растушёвка выше складки, глаза открыты.",
			Detail: "Растушёвывай тени чуть выше естественной складки при открытых глазах. Стрелку рисуй с открытыми глазами, чтобы она не пряталась. Тушь с подкручивающим эффектом.",
		},
		"almond": {
			Brief:  "Подчеркни форму классической стрелкой.",
			Detail: "Миндалевидная форма универсальна: классическая стрелка, смоки или растушёванные тени одинаково хороши. Акцент на внешний уголок вытянет взгляд.",
		},
	},
	Fallback: rule{
		Brief:  "Растушёванные тени и тушь.",
		Detail: "Нейтральные растушёванные тени по складке и тушь на верхние ресницы подходят любой форме глаз.",
	},
}

var occasionTable = table{
	Label: "✨ Образ",
	Rules: map[string]rule{
		"daily": {
			Brief:  "Повседневный образ: минимум средств, максимум свежести.",
			Detail: "На каждый день: лёгкий тон, консилер точечно, брови гелем, одна-два слоя туши и бальзам или тинт для губ. Собирается за 10 минут.",
		},
		"date": {
			Brief:  "Свидание: мягкое сияние и акцент на губы.",
			Detail: "Для свидания: сияющий тон, румяна в тон губам, мягкая растушёвка теней и стойкая помада. Возьми с собой помаду для обновления.",
		},
		"party": {
			Brief:  "Праздник: яркие глаза и стойкие текстуры.",
			Detail: "Для праздника: стойкая база, смоки или блестящие тени, накладные пучки ресниц по желанию, хайлайтер и фиксирующий спрей.",
		},
		"photo": {
			Brief:  "Фото и видео: чуть плотнее, без сильного блеска.",
			Detail: "Для камеры: плотнее тон и консилер, матовая пудра без SPF, чёткие брови и ресницы, контуринг чуть заметнее, чем в жизни.",
		},
	},
	Fallback: rule{
		Brief:  "Универсальный образ на любой случай.",
		Detail: "Универсальный макияж: лёгкий тон, аккуратные брови, тушь и нюдовые губы подходят к любому поводу.",
	},
}

// tables declares the order in which the full plan lists the dimensions.
var tables = []struct {
	Dimension model.Dimension
	Table     table
}{
	{model.DimensionSkin, skinTable},
	{model.DimensionTone, toneTable},
	{model.DimensionUndertone, undertoneTable},
	{model.DimensionEyes, eyesTable},
	{model.DimensionOccasion, occasionTable},
}

// briefOrder is the priority of fragments in the short summary.
var briefOrder = []model.Dimension{
	model.DimensionOccasion,
	model.DimensionSkin,
	model.DimensionUndertone,
}
