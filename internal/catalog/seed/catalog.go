package seed

import "github.com/samuelokello/teahouse/internal/catalog/domain"

// Catalog returns the fixed seed list for the tea shop. Images point at
// bundled static assets so the storefront works without external hosting.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID:    1,
			Title: "Зелёный чай Лунцзин",
			Price: 450.0,
			Description: "Премиальный китайский зелёный чай из провинции Чжэцзян. " +
				"Обладает нежным ореховым ароматом и свежим вкусом. " +
				"Идеален для утреннего чаепития.",
			Category: "Зелёный чай",
			Image:    "/static/images/tea_green.jpg",
			Rating:   4.8,
			Count:    120,
		},
		{
			ID:    2,
			Title: "Пуэр Шу 2015",
			Price: 890.0,
			Description: "Выдержанный тёмный пуэр с мягким землистым вкусом. " +
				"Производство 2015 года. Помогает пищеварению и бодрит.",
			Category: "Пуэр",
			Image:    "/static/images/tea_puer.jpg",
			Rating:   4.9,
			Count:    45,
		},
		{
			ID:    3,
			Title: "Улун Те Гуань Инь",
			Price: 650.0,
			Description: "Классический китайский улун с цветочным ароматом. " +
				"Полуферментированный чай с богатым вкусом и долгим послевкусием.",
			Category: "Улун",
			Image:    "/static/images/tea_oolong.jpg",
			Rating:   4.7,
			Count:    78,
		},
		{
			ID:    4,
			Title: "Белый чай Бай Му Дань",
			Price: 720.0,
			Description: "Нежный белый чай с лёгким сладковатым вкусом. " +
				"Минимальная обработка сохраняет все полезные свойства.",
			Category: "Белый чай",
			Image:    "/static/images/tea_white.jpg",
			Rating:   4.6,
			Count:    32,
		},
		{
			ID:    5,
			Title: "Да Хун Пао",
			Price: 1200.0,
			Description: "Легендарный утёсный улун из гор Уи. " +
				"Один из самых известных и дорогих китайских чаёв. " +
				"Глубокий вкус с нотками карамели и орехов.",
			Category: "Улун",
			Image:    "/static/images/tea_oolong.jpg",
			Rating:   5.0,
			Count:    15,
		},
		{
			ID:    6,
			Title: "Сенча",
			Price: 380.0,
			Description: "Японский зелёный чай повседневного употребления. " +
				"Свежий травянистый вкус, богат антиоксидантами.",
			Category: "Зелёный чай",
			Image:    "/static/images/tea_green.jpg",
			Rating:   4.5,
			Count:    95,
		},
		{
			ID:    7,
			Title: "Матча Церемониальная",
			Price: 950.0,
			Description: "Высший сорт порошкового зелёного чая для чайной церемонии. " +
				"Насыщенный вкус и яркий зелёный цвет.",
			Category: "Зелёный чай",
			Image:    "/static/images/tea_green.jpg",
			Rating:   4.9,
			Count:    28,
		},
		{
			ID:    8,
			Title: "Жасминовый чай",
			Price: 520.0,
			Description: "Зелёный чай с натуральными цветами жасмина. " +
				"Изысканный цветочный аромат и мягкий вкус.",
			Category: "Зелёный чай",
			Image:    "/static/images/tea_green.jpg",
			Rating:   4.7,
			Count:    67,
		},
		{
			ID:    9,
			Title: "Лапсанг Сушонг",
			Price: 580.0,
			Description: "Копчёный чёрный чай с насыщенным дымным ароматом. " +
				"Необычный вкус для любителей экспериментов.",
			Category: "Чёрный чай",
			Image:    "/static/images/tea_black.jpg",
			Rating:   4.3,
			Count:    42,
		},
		{
			ID:    10,
			Title: "Ассам",
			Price: 340.0,
			Description: "Классический индийский чёрный чай. " +
				"Крепкий, солодовый вкус. Отлично подходит для завтрака.",
			Category: "Чёрный чай",
			Image:    "/static/images/tea_black.jpg",
			Rating:   4.6,
			Count:    110,
		},
		{
			ID:    11,
			Title: "Серебряные иглы",
			Price: 1450.0,
			Description: "Элитный белый чай из провинции Фуцзянь. " +
				"Собирается только из почек. Деликатный и утончённый.",
			Category: "Белый чай",
			Image:    "/static/images/tea_white.jpg",
			Rating:   5.0,
			Count:    8,
		},
		{
			ID:    12,
			Title: "Молочный улун",
			Price: 690.0,
			Description: "Улун с естественным молочно-сливочным ароматом. " +
				"Мягкий и нежный вкус, любимец многих.",
			Category: "Улун",
			Image:    "/static/images/tea_oolong.jpg",
			Rating:   4.8,
			Count:    56,
		},
	}
}
