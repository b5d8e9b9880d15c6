package integration

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/vladislavdragonenkov/ois/internal/domain"
	msgmemory "github.com/vladislavdragonenkov/ois/internal/messaging/memory"
	"github.com/vladislavdragonenkov/ois/internal/service/intake"
	"github.com/vladislavdragonenkov/ois/internal/storage/memory"
)

// OrderLifecycleTestSuite тестирует полный жизненный цикл заказа:
// создание с документом и без, чтение, листинг и получение документа.
type OrderLifecycleTestSuite struct {
	suite.Suite
	service   *intake.Service
	orders    domain.OrderRepository
	files     domain.FileStore
	publisher *msgmemory.Publisher
}

func (suite *OrderLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	suite.orders = memory.NewOrderRepository()
	suite.files = memory.NewFileStore("")
	suite.publisher = msgmemory.NewPublisher()

	suite.service = intake.NewServiceWithoutMetrics(
		suite.orders,
		suite.files,
		suite.publisher,
		logger,
	)
}

func (suite *OrderLifecycleTestSuite) TestCreateAndReadBack() {
	created, err := suite.service.CreateOrder("Acme", "150.50", "2024-01-15", nil)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(created.ID)

	got, err := suite.service.GetOrder(created.ID)
	suite.Require().NoError(err)
	suite.True(got.Equal(created))
	suite.False(got.HasInvoice())
}

func (suite *OrderLifecycleTestSuite) TestCreateWithInvoiceAndFetchDocument() {
	invoice := &intake.InvoiceUpload{
		Filename:    "invoice.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 lifecycle invoice"),
	}

	created, err := suite.service.CreateOrder("Acme", "99.99", "2024-02-01", invoice)
	suite.Require().NoError(err)
	suite.Require().True(created.HasInvoice())

	data, err := suite.service.GetInvoice(created.ID)
	suite.Require().NoError(err)
	suite.Equal(invoice.Data, data)
}

func (suite *OrderLifecycleTestSuite) TestEveryCreateIsNotified() {
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := suite.service.CreateOrder(name, "10", "2024-01-15", nil)
		suite.Require().NoError(err)
	}

	suite.Len(suite.publisher.Sent(), 3)
}

func (suite *OrderLifecycleTestSuite) TestListReflectsCreatedOrders() {
	first, err := suite.service.CreateOrder("Alpha", "10", "2024-01-15", nil)
	suite.Require().NoError(err)
	second, err := suite.service.CreateOrder("Beta", "20", "2024-01-16", nil)
	suite.Require().NoError(err)

	orders, err := suite.service.ListOrders()
	suite.Require().NoError(err)
	suite.Len(orders, 2)

	byID := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	suite.True(byID[first.ID].Equal(first))
	suite.True(byID[second.ID].Equal(second))
}

func (suite *OrderLifecycleTestSuite) TestValidationFailureLeavesNoTrace() {
	_, err := suite.service.CreateOrder("", "10", "2024-01-15", nil)
	suite.Require().Error(err)
	suite.True(domain.IsValidation(err))

	orders, err := suite.service.ListOrders()
	suite.Require().NoError(err)
	suite.Empty(orders)
	suite.Empty(suite.publisher.Sent())
}

func TestOrderLifecycleSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}
