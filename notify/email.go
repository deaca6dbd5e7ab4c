package notify

import (
	"fmt"

	"github.com/tjhs/sportrental/model"
)

// BuildOverdueEmail renders the reminder subject and body for an overdue
// rental.
func BuildOverdueEmail(r *model.Rental, u *model.User) (subject, body string) {
	subject = fmt.Sprintf("URGENT: Overdue Equipment Return - %s", r.EquipmentName)
	body = fmt.Sprintf(`Dear %s,

This is a reminder that you have an overdue equipment rental that needs to be returned immediately.

Rental Details:
- Equipment: %s
- Rental ID: %s
- Due Date: %s
- Current Status: OVERDUE

Please return the equipment to the sports office as soon as possible. Continued failure to return equipment may result in restrictions on future rentals.

If you have already returned the equipment, please contact the sports office to update your rental status.

Thank you for your cooperation.

Best regards,
TJHS Sports Department
The Jannali High School`,
		u.Name, r.EquipmentName, r.ID, r.DueDate.Format("02/01/2006 at 15:04"))
	return subject, body
}
