package alor

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
)

// IsActiveStatus сообщает, считается ли заявка с таким статусом активной
func IsActiveStatus(status string) bool {
	return slices.Contains(ActiveStatuses, status)
}

// IsClosedStatus сообщает, считается ли заявка с таким статусом закрытой
func IsClosedStatus(status string) bool {
	return slices.Contains(ClosedStatuses, status)
}

// тип для работы с группами заявок
type Orders []*Order

// CancelAll снимает все заявки группы. Ошибки предусловий накапливаются,
// отказы брокера остаются в ResponseMessage каждой заявки.
func (oo Orders) CancelAll(ctx context.Context) (result error) {
	for _, o := range oo {
		if _, err := o.Delete(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
