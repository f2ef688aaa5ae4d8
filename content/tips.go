package content

// DailyTips is the rotation pool for the daily delivery.
var DailyTips = []string{
	"💡 Наноси тональное средство от центра лица к краям: так не будет «маски» у линии роста волос.",
	"💡 Увлажняющий крем должен впитаться 5–10 минут, прежде чем ты нанесёшь праймер или тон.",
	"💡 Консилер на тон светлее основного оттенка освежает взгляд, если растушевать его треугольником под глазом.",
	"💡 Румяна на «яблочки» щёк молодят, а по скуле к виску визуально вытягивают лицо.",
	"💡 Перед нанесением туши подкрути ресницы и прогрей щипчики феном пару секунд: изгиб продержится дольше.",
	"💡 Тени держатся дольше на базе. Если базы нет, подойдёт тонкий слой консилера, закреплённый пудрой.",
	"💡 Пудру наноси только там, где появляется блеск: Т-зона, крылья носа, подбородок.",
	"💡 Карандаш для губ в тон губам, а не помаде, делает контур естественным и не выдаёт себя к вечеру.",
	"💡 Хайлайтер на верхнюю часть скул, спинку носа и над верхней губой дает свежий эффект сияния.",
	"💡 Брови расчёсывай щёточкой вверх и фиксируй гелем: лицо выглядит открытее.",
	"💡 Спонж работает лучше, если его смочить и хорошо отжать: тон ложится тоньше.",
	"💡 Мой кисти раз в неделю: так средства ложатся ровнее, а кожа реже раздражается.",
	"💡 Стрелку проще рисовать, если поставить точку кончика и соединить её с внешним уголком глаза.",
	"💡 Спрей-фиксатор после макияжа «сплавляет» слои и убирает эффект пудры.",
	"💡 Смывай макияж даже после самого долгого дня: двухэтапное очищение бережёт кожу.",
	"💡 Бронзер наноси цифрой «3» по контуру лица: лоб, скула, линия челюсти.",
	"💡 Для фото чуть усиль брови и ресницы: камера «съедает» до трети интенсивности.",
	"💡 Бальзам для губ под помадой сгладит шелушения и продлит стойкость цвета.",
}
