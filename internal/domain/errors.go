package domain

import "errors"

var (
	// Ошибка пустого имени клиента при создании заказа.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// Ошибка текстовой суммы, которая не разбирается как десятичное число.
	ErrAmountInvalid = errors.New("order amount must be a decimal number")
	// Ошибка даты, которая не разбирается как ISO-дата вида 2006-01-02.
	ErrDateInvalid = errors.New("order date must be an ISO calendar date")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище записей.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvoiceNotFound возвращается, если у заказа нет прикреплённого документа.
	ErrInvoiceNotFound = errors.New("invoice not found for order")
	// ErrFileNotFound возвращается файловым хранилищем при отсутствии ключа.
	ErrFileNotFound = errors.New("file not found")
)

// IsValidation сообщает, вызвана ли ошибка некорректным вводом.
// Такие ошибки отклоняются до любой записи во внешние хранилища.
func IsValidation(err error) bool {
	return errors.Is(err, ErrCustomerNameRequired) ||
		errors.Is(err, ErrAmountInvalid) ||
		errors.Is(err, ErrDateInvalid)
}

// IsNotFound сообщает, является ли ошибка сигналом отсутствия,
// а не сбоем хранилища.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrInvoiceNotFound) ||
		errors.Is(err, ErrFileNotFound)
}
