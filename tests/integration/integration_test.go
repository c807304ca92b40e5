package integration_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	adaptconfig "github.com/ordo-labs/order-api/internal/adapters/config"
	adaptmongo "github.com/ordo-labs/order-api/internal/adapters/mongo"
	"github.com/ordo-labs/order-api/internal/adapters/mongo/repository"
	"github.com/ordo-labs/order-api/internal/adapters/outbox"
	adaptrabbitmq "github.com/ordo-labs/order-api/internal/adapters/rabbitmq"
	adaptredis "github.com/ordo-labs/order-api/internal/adapters/redis"
	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/dto"
	"github.com/ordo-labs/order-api/internal/core/service"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient  *mongo.Client
	redisClient  *adaptredis.Client
	broker       *adaptrabbitmq.RabbitMQAdapter
	amqpEndpoint string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	if err != nil {
		log.Fatalf("mongodb container: %v", err)
	}
	mongoEndpoint, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("mongodb connection string: %v", err)
	}
	mongoClient, err = mongo.Connect(ctx, options.Client().
		ApplyURI(mongoEndpoint).
		SetDirect(true).
		SetConnectTimeout(30*time.Second).
		SetServerSelectionTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("mongodb ping: %v", err)
	}

	// --- Redis ---
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}
	redisEndpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}
	redisClient, err = adaptredis.NewConnection(adaptconfig.RedisConfig{URL: redisEndpoint})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	// --- RabbitMQ ---
	rabbitContainer, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("rabbitmq container: %v", err)
	}
	amqpEndpoint, err = rabbitContainer.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("rabbitmq amqp url: %v", err)
	}
	broker, err = adaptrabbitmq.NewRabbitMQAdapter(adaptconfig.RabbitMQConfig{
		URL:        amqpEndpoint,
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []adaptconfig.ExchangeConfig{
			{Name: "exchange.audit", Type: "direct", Durable: true, AutoDelete: false},
		},
	})
	if err != nil {
		log.Fatalf("rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = broker.Close()
	_ = redisClient.Close()
	_ = mongoClient.Disconnect(ctx)
	_ = mongoContainer.Terminate(ctx)
	_ = redisContainer.Terminate(ctx)
	_ = rabbitContainer.Terminate(ctx)

	os.Exit(code)
}

func setupConsumer(t *testing.T, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(amqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel: %v", err)
	}
	t.Cleanup(func() { ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, "exchange.audit", false, nil); err != nil {
		t.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	return msgs
}

func buildServices(t *testing.T, dbName string) (
	*service.OrderService,
	*service.ProductService,
	*service.CustomerService,
	*service.AuditService,
	*outbox.Handler,
) {
	t.Helper()
	db := mongoClient.Database(dbName)

	outboxRepo := repository.NewOutboxRepository(db)
	txManager := adaptmongo.NewTransactionManager(mongoClient)
	auditRepo := repository.NewAuditLogRepository(db, outboxRepo, txManager)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	auditService := service.NewAuditService(auditRepo)
	customerService := service.NewCustomerService(customerRepo, auditService)

	productCache := adaptredis.NewCache[domain.Product](redisClient, dbName+"-product")
	productService := service.NewProductService(productRepo, productCache, auditService)

	orderCache := adaptredis.NewCache[domain.Order](redisClient, dbName+"-order")
	idempotencyCache := adaptredis.NewCache[service.IdempotencyEntry[domain.Order]](redisClient, dbName+"-idemp")
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 5*time.Minute, 500*time.Millisecond, 10*time.Second)

	orderService := service.NewOrderService(orderRepo, productService, customerService, auditService, orderCache, idempotencyService)

	outboxHandler := outbox.NewHandler(outboxRepo, broker, adaptconfig.OutboxConfig{
		Interval:  100 * time.Millisecond,
		BatchSize: 50,
	})

	return orderService, productService, customerService, auditService, outboxHandler
}

func createCustomer(t *testing.T, svc *service.CustomerService, name string) *domain.Customer {
	t.Helper()
	customer, err := svc.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:       name,
		LastName:   "Tester",
		Address:    "742 Evergreen Terrace",
		PostalCode: "62704",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customer
}

func createProduct(t *testing.T, svc *service.ProductService, name string, price float64) *domain.Product {
	t.Helper()
	product, err := svc.Create(context.Background(), &dto.CreateProductRequest{Name: name, Price: price})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestIntegration_CreateOrder_FullCycle(t *testing.T) {
	msgs := setupConsumer(t, "order.create")

	orderSvc, productSvc, customerSvc, auditSvc, outboxHandler := buildServices(t, "int_full_cycle")
	ctx := context.Background()

	handlerCtx, cancelHandler := context.WithCancel(ctx)
	defer cancelHandler()
	go outboxHandler.Start(handlerCtx)

	customer := createCustomer(t, customerSvc, "Homer")
	product := createProduct(t, productSvc, "Integration Widget", 25.50)

	order, err := orderSvc.Create(ctx, "", &dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItem{{ProductID: product.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.ID == "" {
		t.Fatal("order ID should not be empty")
	}
	if order.TotalPrice() != 76.5 {
		t.Fatalf("expected total 76.5, got %v", order.TotalPrice())
	}
	if len(order.Items()) != 1 || order.Items()[0].Product() == nil {
		t.Fatal("expected 1 item with product attached")
	}

	select {
	case msg := <-msgs:
		var event domain.AuditEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.EntityID != order.ID {
			t.Fatalf("event entity_id: expected %s, got %s", order.ID, event.EntityID)
		}
		if event.ActionType != domain.AuditActionCreate {
			t.Fatalf("event action_type: expected 'create', got %q", event.ActionType)
		}
		if event.EntityName != "order" {
			t.Fatalf("event entity_name: expected 'order', got %q", event.EntityName)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for order.create event")
	}

	logs, err := auditSvc.GetByEntityID(ctx, order.ID, 10, 0)
	if err != nil {
		t.Fatalf("get audit logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 audit log for order, got %d", len(logs))
	}

	fetched, err := orderSvc.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if fetched.TotalPrice() != 76.5 {
		t.Fatalf("expected fetched total 76.5, got %v", fetched.TotalPrice())
	}
}

func TestIntegration_CreateOrder_Idempotency(t *testing.T) {
	orderSvc, productSvc, customerSvc, _, _ := buildServices(t, "int_idempotency")
	ctx := context.Background()

	customer := createCustomer(t, customerSvc, "Marge")
	product := createProduct(t, productSvc, "Idemp Widget", 10)

	request := &dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItem{{ProductID: product.ID, Quantity: 2}},
	}

	order1, err := orderSvc.Create(ctx, "idemp-key-1", request)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	order2, err := orderSvc.Create(ctx, "idemp-key-1", request)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if order2.ID != order1.ID {
		t.Fatalf("expected same order: %s vs %s", order1.ID, order2.ID)
	}

	// Only one order persisted
	orders, total, err := orderSvc.List(ctx, &dto.ListOrdersRequest{})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected a single persisted order, got total=%d len=%d", total, len(orders))
	}
}

func TestIntegration_CreateOrder_InvalidCustomer(t *testing.T) {
	orderSvc, productSvc, _, _, _ := buildServices(t, "int_bad_customer")
	ctx := context.Background()

	product := createProduct(t, productSvc, "Widget Pro", 5)

	_, err := orderSvc.Create(ctx, "", &dto.CreateOrderRequest{
		CustomerID: "aabbccddee112233aabbccdd",
		Items:      []dto.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected error for non-existing customer")
	}
	if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestIntegration_GetOrderByID_Cache(t *testing.T) {
	orderSvc, productSvc, customerSvc, _, _ := buildServices(t, "int_cache")
	ctx := context.Background()

	customer := createCustomer(t, customerSvc, "Lisa")
	product := createProduct(t, productSvc, "Cache Widget", 15)

	order, err := orderSvc.Create(ctx, "", &dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	f1, err := orderSvc.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}

	// Second fetch → cache hit
	f2, err := orderSvc.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}

	if f1.ID != f2.ID || f1.TotalPrice() != f2.TotalPrice() {
		t.Fatal("cached order should match original")
	}
}

func TestIntegration_ItemLifecycle(t *testing.T) {
	msgs := setupConsumer(t, "order.update")

	orderSvc, productSvc, customerSvc, _, outboxHandler := buildServices(t, "int_item_lifecycle")
	ctx := context.Background()

	handlerCtx, cancelHandler := context.WithCancel(ctx)
	defer cancelHandler()
	go outboxHandler.Start(handlerCtx)

	customer := createCustomer(t, customerSvc, "Bart")
	first := createProduct(t, productSvc, "First Widget", 25.50)
	second := createProduct(t, productSvc, "Second Widget", 10)

	order, err := orderSvc.Create(ctx, "", &dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItem{{ProductID: first.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.TotalPrice() != 51 {
		t.Fatalf("expected total 51, got %v", order.TotalPrice())
	}

	// Add a second product
	order, err = orderSvc.AddItem(ctx, order.ID, &dto.AddOrderItemRequest{ProductID: second.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if order.TotalPrice() != 81 {
		t.Fatalf("expected total 81 after add, got %v", order.TotalPrice())
	}
	if len(order.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items()))
	}

	select {
	case msg := <-msgs:
		var event domain.AuditEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if event.ActionType != domain.AuditActionUpdate {
			t.Fatalf("expected update action in event, got %q", event.ActionType)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for order.update event")
	}

	// Remove the first product; the aggregate decreases its own total
	order, err = orderSvc.RemoveItem(ctx, order.ID, first.ID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if order.TotalPrice() != 30 {
		t.Fatalf("expected total 30 after removal, got %v", order.TotalPrice())
	}

	// Removing the last item deletes the order
	order, err = orderSvc.RemoveItem(ctx, order.ID, second.ID)
	if err != nil {
		t.Fatalf("remove last item: %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order after last item removed, got %+v", order)
	}
}
