package intake

import (
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/ois/internal/domain"
)

// invoiceKey детерминированно выводит ключ хранения документа из
// идентификатора заказа и исходного имени файла, поэтому ключ всегда
// восстановим из ссылки-локации на записи заказа.
func invoiceKey(orderID, filename string) string {
	return fmt.Sprintf("invoices/%s/%s", orderID, filename)
}

// invoiceKeyFromURL извлекает ключ из ссылки вида https://<bucket>.<host>/<key>:
// берётся всё после первого разделителя пути за маркером хоста.
func invoiceKeyFromURL(fileURL string) (string, error) {
	rest := fileURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+len("://"):]
	}

	slash := strings.Index(rest, "/")
	if slash < 0 || slash == len(rest)-1 {
		return "", fmt.Errorf("%w: malformed invoice reference %q", domain.ErrInvoiceNotFound, fileURL)
	}
	return rest[slash+1:], nil
}
