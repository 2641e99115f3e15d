package services

import "strconv"

// OrderNumberOffset keeps order numbers six digits long from the start.
const OrderNumberOffset = 100000

// OrderNumber formats the next value of the order number sequence.
func OrderNumber(sequenceValue int64) string {
	return strconv.FormatInt(OrderNumberOffset+sequenceValue, 10)
}
