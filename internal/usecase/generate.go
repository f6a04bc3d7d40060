package usecase

//go:generate mockgen -source=auth_session_usecase.go -destination=../adapter/http/handlers/mocks/auth_session_usecase_mock.go -package=mocks
//go:generate mockgen -source=backup_usecase.go -destination=../adapter/http/handlers/mocks/backup_usecase_mock.go -package=mocks
//go:generate mockgen -source=billing_usecase.go -destination=../adapter/http/handlers/mocks/billing_usecase_mock.go -package=mocks
//go:generate mockgen -source=customer_usecase.go -destination=../adapter/http/handlers/mocks/customer_usecase_mock.go -package=mocks
//go:generate mockgen -source=finance_usecase.go -destination=../adapter/http/handlers/mocks/finance_usecase_mock.go -package=mocks
//go:generate mockgen -source=invoice_payment_usecase.go -destination=../adapter/http/handlers/mocks/invoice_payment_usecase_mock.go -package=mocks
//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks
//go:generate mockgen -source=product_usecase.go -destination=../adapter/http/handlers/mocks/product_usecase_mock.go -package=mocks
//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/settings_usecase_mock.go -package=mocks
//go:generate mockgen -source=status_monitor_usecase.go -destination=../adapter/http/handlers/mocks/status_monitor_usecase_mock.go -package=mocks
//go:generate mockgen -source=whatsapp_usecase.go -destination=../adapter/http/handlers/mocks/whatsapp_usecase_mock.go -package=mocks
