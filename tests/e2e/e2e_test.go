package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cottagesheets/internal/database"
	"cottagesheets/internal/domain"
	"cottagesheets/internal/middleware"
	"cottagesheets/internal/modules/auth"
	"cottagesheets/internal/modules/booking"
	"cottagesheets/internal/modules/catalog"
	"cottagesheets/internal/modules/dashboard"
	"cottagesheets/internal/modules/events"
	"cottagesheets/internal/modules/expense"
	"cottagesheets/internal/modules/payment"
	"cottagesheets/internal/modules/plan"
	"cottagesheets/internal/modules/realty"
	"cottagesheets/internal/modules/webhook"
	jwtsvc "cottagesheets/internal/pkg/jwt"
	"cottagesheets/internal/repository"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	hub    *events.Hub
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	// У in-memory sqlite каждое соединение пула видит свою пустую базу
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	models := []interface{}{
		&domain.User{},
		&domain.Session{},
		&domain.Booking{},
		&domain.Service{},
		&domain.BookingService{},
		&domain.Payment{},
		&domain.Expense{},
		&domain.MonthlyPlan{},
		&domain.Realty{},
	}
	for _, model := range models {
		err := db.AutoMigrate(model)
		require.NoError(t, err, fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bookingServiceRepo := repository.NewBookingServiceRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	planRepo := repository.NewPlanRepository(db)
	realtyRepo := repository.NewRealtyRepository(db)
	titleRepo := repository.NewTitleRepository(db)

	jwtService := jwtsvc.New("test-secret-key", time.Hour)
	hub := events.NewHub()

	authHandler := auth.NewHandler(auth.NewService(userRepo, sessionRepo, jwtService), 3600, false)
	webhookHandler := webhook.NewHandler(webhook.NewService(bookingRepo, hub))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, bookingServiceRepo, serviceRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(serviceRepo))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, bookingServiceRepo, titleRepo))
	expenseHandler := expense.NewHandler(expense.NewService(expenseRepo, titleRepo))
	planHandler := plan.NewHandler(plan.NewService(planRepo))
	realtyHandler := realty.NewHandler(realty.NewService(realtyRepo, bookingRepo, titleRepo))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(bookingRepo, paymentRepo, expenseRepo))

	r := gin.New()
	r.Use(middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "DMD Cottage Sheets"})
	})

	public := r.Group("/")
	authHandler.RegisterRoutes(public)
	webhookHandler.RegisterRoutes(public)

	authorized := r.Group("/")
	authorized.Use(middleware.NewAuth(jwtService, sessionRepo).Handler())

	admin := authorized.Group("/")
	admin.Use(middleware.AdminOnly())

	bookingHandler.RegisterRoutes(authorized)
	catalogHandler.RegisterRoutes(authorized, admin)
	paymentHandler.RegisterRoutes(authorized)
	expenseHandler.RegisterRoutes(authorized)

	planHandler.RegisterRoutes(admin)
	realtyHandler.RegisterRoutes(admin)
	dashboardHandler.RegisterRoutes(admin)

	seedUser(t, db, "admin", "admin123", domain.RoleAdmin)
	seedUser(t, db, "operator", "operator123", domain.RoleUser)

	return &E2ETestSuite{router: r, db: db, hub: hub}
}

func seedUser(t *testing.T, db *gorm.DB, username, password, role string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	err = db.Create(&domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}).Error
	require.NoError(t, err, "Failed to seed user %s", username)
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, sessionToken string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionToken})
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login возвращает значение cookie session_token.
func (s *E2ETestSuite) login(t *testing.T, username, password string) string {
	w := s.makeRequest("POST", "/login", gin.H{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("login response has no session cookie")
	return ""
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err, "Failed to parse response: %s", w.Body.String())
	return body
}

// postWebhook загоняет событие календаря и проверяет успешный ответ.
func (s *E2ETestSuite) postWebhook(t *testing.T, event gin.H) {
	w := s.makeRequest("POST", "/webhook", event, "")
	require.Equal(t, http.StatusOK, w.Code, "webhook failed: %s", w.Body.String())
}

func bookingEvent(id int64, action, title, beginDate, endDate string, amount, prepayment, platformTax float64) gin.H {
	return gin.H{
		"action": action,
		"status": "booked",
		"data": gin.H{
			"booking": gin.H{
				"id":           id,
				"begin_date":   beginDate,
				"end_date":     endDate,
				"realty_id":    1,
				"amount":       amount,
				"prepayment":   prepayment,
				"platform_tax": platformTax,
				"client": gin.H{
					"fio":   "Иванов Иван",
					"phone": "+7 777 123 45 67",
				},
				"apartment": gin.H{
					"title":   title,
					"address": "г. Щучинск, " + title,
				},
				"number_of_nights": 2,
			},
		},
	}
}

// =============================================================================
// Flow 1: Авторизация и сессии
// =============================================================================

func TestFlow1_LoginAndSessions(t *testing.T) {
	suite := setupTestSuite(t)
	defer suite.hub.Close()

	t.Run("GET /health", func(t *testing.T) {
		w := suite.makeRequest("GET", "/health", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "DMD Cottage Sheets", body["service"])
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		w := suite.makeRequest("POST", "/login", gin.H{"username": "admin", "password": "wrong"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Неверный логин или пароль", body["message"])
	})

	t.Run("Успешный вход выставляет cookie", func(t *testing.T) {
		w := suite.makeRequest("POST", "/login", gin.H{"username": "admin", "password": "admin123"}, "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "admin", body["user_type"])

		cookieNames := map[string]bool{}
		for _, cookie := range w.Result().Cookies() {
			cookieNames[cookie.Name] = cookie.Value != ""
		}
		assert.True(t, cookieNames[middleware.SessionCookieName], "session cookie missing")
		assert.True(t, cookieNames["user_type"], "user_type cookie missing")
	})

	t.Run("Без cookie доступа нет", func(t *testing.T) {
		w := suite.makeRequest("GET", "/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("С cookie доступ есть", func(t *testing.T) {
		token := suite.login(t, "admin", "admin123")

		w := suite.makeRequest("GET", "/bookings", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "admin", body["user_type"])
		assert.Contains(t, body, "grouped_bookings")
	})

	t.Run("Logout отзывает сессию", func(t *testing.T) {
		token := suite.login(t, "admin", "admin123")

		w := suite.makeRequest("GET", "/logout", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		// Тот же токен больше не работает: строка сессии удалена
		w = suite.makeRequest("GET", "/bookings", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 2: Вебхук календаря и шахматка
// =============================================================================

func TestFlow2_WebhookToSheet(t *testing.T) {
	suite := setupTestSuite(t)
	defer suite.hub.Close()

	token := suite.login(t, "admin", "admin123")

	t.Run("Одиночное событие создает бронирование", func(t *testing.T) {
		w := suite.makeRequest("POST", "/webhook",
			bookingEvent(501, "create_booking", "Кедровая 9", "2025-07-10", "2025-07-12", 30000, 10000, 900), "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "success", body["status"])
		result := body["result"].(map[string]interface{})
		assert.Equal(t, float64(501), result["booking_id"])
	})

	t.Run("Массив событий", func(t *testing.T) {
		batch := []gin.H{
			bookingEvent(502, "create_booking", "Кедровая 9 ДУБЛЬ", "2025-07-10", "2025-07-11", 12000, 4000, 0),
			bookingEvent(501, "update_booking", "Кедровая 9", "2025-07-10", "2025-07-12", 32000, 10000, 900),
		}
		w := suite.makeRequest("POST", "/webhook", batch, "")
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, float64(2), body["processed"])
	})

	t.Run("Шахматка группирует дубли объекта", func(t *testing.T) {
		w := suite.makeRequest("GET", "/bookings", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		rows := body["grouped_bookings"].([]interface{})
		require.Len(t, rows, 2)

		byAddress := map[string]map[string]interface{}{}
		for _, raw := range rows {
			row := raw.(map[string]interface{})
			byAddress[row["address"].(string)] = row
		}

		main := byAddress["Кедровая 9"]
		require.NotNil(t, main, "основной объект не попал в шахматку")
		dup := byAddress["Кедровая 9 ДУБЛЬ"]
		require.NotNil(t, dup, "дубль не попал в шахматку")

		// Дубль и основной объект рисуются одной группой
		assert.Equal(t, true, main["has_duplicate"])
		assert.Equal(t, true, dup["has_duplicate"])
		assert.Equal(t, false, main["is_single_row"])

		checkin := main["checkin"].(map[string]interface{})
		assert.Equal(t, "Иванов Иван", checkin["client_fio"])
		// Деньги на карточке за вычетом комиссии: 32000 - 900
		assert.Equal(t, float64(31100), checkin["total_amount"])
		assert.Nil(t, main["checkout"])
	})

	t.Run("Фильтр по дате", func(t *testing.T) {
		w := suite.makeRequest("GET", "/bookings?filter_date=2025-07-10", nil, token)
		body := parseBody(t, w)
		assert.Len(t, body["grouped_bookings"].([]interface{}), 2)
		assert.Equal(t, "2025-07-10", body["filter_date"])

		w = suite.makeRequest("GET", "/bookings?filter_date=2025-01-01", nil, token)
		body = parseBody(t, w)
		assert.Len(t, body["grouped_bookings"].([]interface{}), 0)
	})

	t.Run("Комментарий дня заселения", func(t *testing.T) {
		w := suite.makeRequest("POST", "/update-checkin-comment",
			gin.H{"booking_id": 501, "comments": "доплата наличными при заезде"}, token)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "Комментарий обновлен", body["message"])

		w = suite.makeRequest("GET", "/bookings?filter_date=2025-07-10", nil, token)
		rows := parseBody(t, w)["grouped_bookings"].([]interface{})
		for _, raw := range rows {
			row := raw.(map[string]interface{})
			if row["address"] == "Кедровая 9" {
				checkin := row["checkin"].(map[string]interface{})
				assert.Equal(t, "доплата наличными при заезде", checkin["checkin_day_comments"])
			}
		}
	})

	t.Run("Комментарий к несуществующему бронированию", func(t *testing.T) {
		w := suite.makeRequest("POST", "/update-checkin-comment",
			gin.H{"booking_id": 99999, "comments": "нет такого"}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Бронирование не найдено")
	})

	t.Run("Удаление события убирает строку", func(t *testing.T) {
		suite.postWebhook(t, bookingEvent(502, "delete_booking", "Кедровая 9 ДУБЛЬ", "2025-07-10", "2025-07-11", 12000, 4000, 0))

		w := suite.makeRequest("GET", "/bookings", nil, token)
		rows := parseBody(t, w)["grouped_bookings"].([]interface{})
		require.Len(t, rows, 1)

		row := rows[0].(map[string]interface{})
		assert.Equal(t, "Кедровая 9", row["address"])
		assert.Equal(t, false, row["has_duplicate"])
	})
}

// =============================================================================
// Flow 3: Справочник услуг и услуги бронирования
// =============================================================================

func TestFlow3_ServicesOnBooking(t *testing.T) {
	suite := setupTestSuite(t)
	defer suite.hub.Close()

	adminToken := suite.login(t, "admin", "admin123")
	operatorToken := suite.login(t, "operator", "operator123")

	suite.postWebhook(t, bookingEvent(601, "create_booking", "Кедровая 9", "2025-07-10", "2025-07-12", 30000, 10000, 0))

	var serviceID float64

	t.Run("Админ создает услугу", func(t *testing.T) {
		w := suite.makeRequest("POST", "/services/create", gin.H{"name": "Баня"}, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "success", body["status"])
		serviceID = body["id"].(float64)
		assert.NotZero(t, serviceID)
	})

	t.Run("Дубль названия отклоняется", func(t *testing.T) {
		w := suite.makeRequest("POST", "/services/create", gin.H{"name": "  Баня "}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "уже существует")
	})

	t.Run("Оператору создание запрещено", func(t *testing.T) {
		w := suite.makeRequest("POST", "/services/create", gin.H{"name": "Веники"}, operatorToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Доступ запрещен")
	})

	t.Run("Оператор видит активные услуги", func(t *testing.T) {
		w := suite.makeRequest("GET", "/services", nil, operatorToken)
		assert.Equal(t, http.StatusOK, w.Code)

		services := parseBody(t, w)["services"].([]interface{})
		require.Len(t, services, 1)
		assert.Equal(t, "Баня", services[0].(map[string]interface{})["name"])
	})

	var attachedID float64

	t.Run("Привязка услуги к бронированию", func(t *testing.T) {
		w := suite.makeRequest("POST", "/booking-services",
			gin.H{"booking_id": 601, "service_id": serviceID, "price": 5000}, operatorToken)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "Услуга добавлена", body["message"])
		attachedID = body["id"].(float64)
	})

	t.Run("Привязка к несуществующему бронированию", func(t *testing.T) {
		w := suite.makeRequest("POST", "/booking-services",
			gin.H{"booking_id": 99999, "service_id": serviceID, "price": 5000}, operatorToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Бронирование не найдено")
	})

	t.Run("Привязка несуществующей услуги", func(t *testing.T) {
		w := suite.makeRequest("POST", "/booking-services",
			gin.H{"booking_id": 601, "service_id": 99999, "price": 5000}, operatorToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Услуга не найдена")
	})

	t.Run("Список услуг бронирования", func(t *testing.T) {
		w := suite.makeRequest("GET", "/booking-services/601", nil, operatorToken)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		services := body["services"].([]interface{})
		require.Len(t, services, 1)
		assert.Equal(t, "Баня", services[0].(map[string]interface{})["service_name"])
		assert.Equal(t, float64(5000), body["total"])
	})

	t.Run("Услуги видны в шахматке", func(t *testing.T) {
		w := suite.makeRequest("GET", "/bookings", nil, operatorToken)
		rows := parseBody(t, w)["grouped_bookings"].([]interface{})
		require.Len(t, rows, 1)

		checkin := rows[0].(map[string]interface{})["checkin"].(map[string]interface{})
		assert.Equal(t, float64(5000), checkin["services_total"])
	})

	t.Run("Отвязка услуги", func(t *testing.T) {
		w := suite.makeRequest("DELETE", fmt.Sprintf("/booking-services/%.0f", attachedID), nil, operatorToken)
		assert.Equal(t, http.StatusOK, w.Code)

		// Повторное удаление - 404
		w = suite.makeRequest("DELETE", fmt.Sprintf("/booking-services/%.0f", attachedID), nil, operatorToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Flow 4: Поступления и расходы
// =============================================================================

func TestFlow4_MoneyFlows(t *testing.T) {
	suite := setupTestSuite(t)
	defer suite.hub.Close()

	token := suite.login(t, "admin", "admin123")

	suite.postWebhook(t, bookingEvent(701, "create_booking", "Кедровая 9", "2025-07-10", "2025-07-12", 30000, 10000, 0))
	suite.postWebhook(t, bookingEvent(702, "create_booking", "Кедровая 9", "2025-08-01", "2025-08-03", 20000, 7000, 0))

	var paymentID float64

	t.Run("Создание поступления по бронированию", func(t *testing.T) {
		// Объект не указан: название берется из бронирования
		w := suite.makeRequest("POST", "/payments/create", gin.H{
			"booking_id":         701,
			"receipt_date":       "2025-07-10",
			"receipt_time":       "9:05",
			"amount":             10000,
			"advance_for_future": 3000,
			"operation_type":     "Наличные",
		}, token)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := parseBody(t, w)
		assert.Equal(t, "Поступление создано", body["message"])
		paymentID = body["id"].(float64)
	})

	t.Run("Поступление без объекта и бронирования", func(t *testing.T) {
		w := suite.makeRequest("POST", "/payments/create", gin.H{
			"receipt_date": "2025-07-10",
			"amount":       500,
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Не указан объект недвижимости")
	})

	t.Run("Список поступлений", func(t *testing.T) {
		w := suite.makeRequest("GET", "/payments/list", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		payments := parseBody(t, w)["payments"].([]interface{})
		require.Len(t, payments, 1)

		p := payments[0].(map[string]interface{})
		assert.Equal(t, "Кедровая 9", p["apartment_title"])
		// Время нормализовано к ЧЧ:ММ
		assert.Equal(t, "09:05", p["receipt_time"])
	})

	t.Run("Страница поступлений и итоги", func(t *testing.T) {
		suite.makeRequest("POST", "/payments/create", gin.H{
			"apartment_title": "Кедровая 9",
			"receipt_date":    "2025-07-11",
			"amount":          21100,
		}, token)

		w := suite.makeRequest("GET", "/payments", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, float64(31100), body["total_fact"])
		assert.Equal(t, float64(3000), body["total_plan"])
		assert.Equal(t, float64(28100), body["total_advance"])
		assert.Contains(t, body, "bookings_with_services")

		apartments := body["unique_apartments"].([]interface{})
		assert.Contains(t, apartments, "Кедровая 9")
	})

	t.Run("Фильтр страницы по дате", func(t *testing.T) {
		w := suite.makeRequest("GET", "/payments?filter_date=2025-07-11", nil, token)
		body := parseBody(t, w)
		assert.Len(t, body["payments"].([]interface{}), 1)
		assert.Equal(t, float64(21100), body["total_fact"])
	})

	t.Run("Аванс по будущим заездам", func(t *testing.T) {
		w := suite.makeRequest("GET", "/payments/calculate-advance?apartment_title=Кедровая 9&selected_date=2025-07-15", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		// После 15 июля заезжает только бронирование 702 с предоплатой 7000
		body := parseBody(t, w)
		assert.Equal(t, float64(7000), body["total_advance"])
	})

	t.Run("Аванс без объекта", func(t *testing.T) {
		w := suite.makeRequest("GET", "/payments/calculate-advance?selected_date=2025-07-15", nil, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Не указан объект недвижимости")
	})

	t.Run("Обновление и удаление поступления", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/payments/%.0f", paymentID),
			gin.H{"amount": 12000, "comment": "доплата"}, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Поступление обновлено")

		w = suite.makeRequest("DELETE", fmt.Sprintf("/payments/%.0f", paymentID), nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("DELETE", fmt.Sprintf("/payments/%.0f", paymentID), nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Поступление не найдено")
	})

	var expenseID float64

	t.Run("Расход по объекту и общехозяйственный", func(t *testing.T) {
		w := suite.makeRequest("POST", "/expenses/create", gin.H{
			"apartment_title": "Кедровая 9",
			"expense_date":    "2025-07-10",
			"amount":          2500,
			"category":        "Уборка",
		}, token)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		expenseID = parseBody(t, w)["id"].(float64)

		// Пустой объект - общехозяйственный расход
		w = suite.makeRequest("POST", "/expenses/create", gin.H{
			"expense_date": "2025-07-12",
			"amount":       500,
			"category":     "Канцелярия",
		}, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Страница расходов", func(t *testing.T) {
		w := suite.makeRequest("GET", "/expenses", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Len(t, body["expenses"].([]interface{}), 2)
		assert.Equal(t, float64(3000), body["total_expenses"])
		assert.Equal(t, "admin", body["user_type"])
	})

	t.Run("Фильтр расходов по объекту", func(t *testing.T) {
		w := suite.makeRequest("GET", "/expenses/list?apartment_title=Кедровая 9", nil, token)
		expenses := parseBody(t, w)["expenses"].([]interface{})
		require.Len(t, expenses, 1)
		assert.Equal(t, "Уборка", expenses[0].(map[string]interface{})["category"])
	})

	t.Run("Обновление и удаление расхода", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/expenses/%.0f", expenseID),
			gin.H{"amount": 2600}, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Расход обновлен")

		w = suite.makeRequest("DELETE", fmt.Sprintf("/expenses/%.0f", expenseID), nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("DELETE", fmt.Sprintf("/expenses/%.0f", expenseID), nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Расход не найден")
	})
}

// =============================================================================
// Flow 5: Админские разделы: планы, объекты, дашборд
// =============================================================================

func TestFlow5_AdminSections(t *testing.T) {
	suite := setupTestSuite(t)
	defer suite.hub.Close()

	adminToken := suite.login(t, "admin", "admin123")
	operatorToken := suite.login(t, "operator", "operator123")

	suite.postWebhook(t, bookingEvent(801, "create_booking", "Кедровая 9", "2025-07-10", "2025-07-12", 30000, 10000, 0))

	t.Run("Оператору админские разделы закрыты", func(t *testing.T) {
		for _, path := range []string{"/plans/list", "/realty/list", "/dashboard", "/services-management/list"} {
			w := suite.makeRequest("GET", path, nil, operatorToken)
			assert.Equal(t, http.StatusForbidden, w.Code, path)
		}
	})

	var planID float64

	t.Run("Планы: полный цикл", func(t *testing.T) {
		w := suite.makeRequest("POST", "/plans/create", gin.H{
			"start_date":    "2025-07-01",
			"end_date":      "2025-07-31",
			"target_amount": 100000,
		}, adminToken)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		planID = parseBody(t, w)["id"].(float64)

		w = suite.makeRequest("GET", "/plans/list", nil, adminToken)
		plans := parseBody(t, w)["plans"].([]interface{})
		require.Len(t, plans, 1)
		assert.Equal(t, float64(100000), plans[0].(map[string]interface{})["target_amount"])

		w = suite.makeRequest("PUT", fmt.Sprintf("/plans/%.0f", planID),
			gin.H{"target_amount": 120000}, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		// Пустое обновление - ошибка
		w = suite.makeRequest("PUT", fmt.Sprintf("/plans/%.0f", planID), gin.H{}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Нет данных для обновления")

		w = suite.makeRequest("DELETE", fmt.Sprintf("/plans/%.0f", planID), nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", "/plans/list", nil, adminToken)
		assert.Len(t, parseBody(t, w)["plans"].([]interface{}), 0)
	})

	var realtyID float64

	t.Run("Справочник объектов наполняется из бронирований", func(t *testing.T) {
		w := suite.makeRequest("GET", "/realty/list", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		objects := parseBody(t, w)["realty_objects"].([]interface{})
		require.Len(t, objects, 1)

		obj := objects[0].(map[string]interface{})
		assert.Equal(t, "Кедровая 9", obj["name"])
		assert.Equal(t, true, obj["is_active"])
		realtyID = obj["id"].(float64)
	})

	t.Run("Переименование каскадом обновляет бронирования", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/realty/%.0f", realtyID),
			gin.H{"name": "Кедровая 9А"}, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Объект обновлен")

		w = suite.makeRequest("GET", "/bookings", nil, adminToken)
		rows := parseBody(t, w)["grouped_bookings"].([]interface{})
		require.Len(t, rows, 1)
		assert.Equal(t, "Кедровая 9А", rows[0].(map[string]interface{})["address"])
	})

	t.Run("Пустое название отклоняется", func(t *testing.T) {
		w := suite.makeRequest("PUT", fmt.Sprintf("/realty/%.0f", realtyID),
			gin.H{"name": "   "}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Название не может быть пустым")
	})

	t.Run("Деактивация объекта", func(t *testing.T) {
		w := suite.makeRequest("DELETE", fmt.Sprintf("/realty/%.0f", realtyID), nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, "Статус обновлен", body["message"])
		assert.Equal(t, false, body["is_active"])
	})

	t.Run("Дашборд за год", func(t *testing.T) {
		// Расход в июле попадает в отчет
		suite.makeRequest("POST", "/expenses/create", gin.H{
			"apartment_title": "Кедровая 9А",
			"expense_date":    "2025-07-15",
			"amount":          1000,
		}, adminToken)

		w := suite.makeRequest("GET", "/dashboard?year=2025", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, float64(2025), body["year"])

		months := body["financial_data"].(map[string]interface{})
		assert.Len(t, months, 12)

		july := months["2025-07"].(map[string]interface{})
		objects := july["objects"].(map[string]interface{})
		require.Contains(t, objects, "Кедровая 9А")

		obj := objects["Кедровая 9А"].(map[string]interface{})
		assert.Equal(t, float64(30000), obj["income"])
		assert.Equal(t, float64(1000), obj["expenses"])
		assert.Equal(t, float64(29000), obj["profit"])

		totals := body["yearly_totals"].(map[string]interface{})
		assert.Equal(t, float64(30000), totals["total_income"])
		assert.Equal(t, float64(1000), totals["total_expenses"])
	})

	t.Run("Год за пределами окна прижимается", func(t *testing.T) {
		w := suite.makeRequest("GET", "/dashboard?year=1999", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		body := parseBody(t, w)
		assert.Equal(t, float64(time.Now().Year()-5), body["year"])
	})
}

// =============================================================================
// Flow 6: Экспорт шахматки в Excel
// =============================================================================

func TestFlow6_Export(t *testing.T) {
	suite := setupTestSuite(t)
	defer suite.hub.Close()

	token := suite.login(t, "admin", "admin123")
	suite.postWebhook(t, bookingEvent(901, "create_booking", "Кедровая 9", "2025-07-10", "2025-07-12", 30000, 10000, 0))

	t.Run("Выгрузка без фильтра", func(t *testing.T) {
		w := suite.makeRequest("GET", "/export", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			w.Header().Get("Content-Type"))

		disposition := w.Header().Get("Content-Disposition")
		assert.Contains(t, disposition, "attachment")
		assert.Contains(t, disposition, ".xlsx")

		// xlsx - это zip-архив
		assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "body is not a zip archive")
	})

	t.Run("Выгрузка с фильтром по дате", func(t *testing.T) {
		w := suite.makeRequest("GET", "/export?filter_date=2025-07-10", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "2025-07-10")
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
