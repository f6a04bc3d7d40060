package interfaces

//go:generate mockgen -source=backend_interfaces.go -destination=mocks/backend_interfaces_mock.go -package=mock_interfaces
//go:generate mockgen -source=invoice_payment_repository_interface.go -destination=mocks/invoice_payment_repository_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=identity_provider_interface.go -destination=mocks/identity_provider_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=notification_sender_interface.go -destination=mocks/notification_sender_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces
//go:generate mockgen -source=state_repository_interfaces.go -destination=mocks/state_repository_interfaces_mock.go -package=mock_interfaces
