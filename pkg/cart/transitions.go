package cart

import "slices"

// The functions below are the cart's state transitions. They never modify the
// input slice and never touch storage.

func indexOf(items []LineItem, id ProductID) int {
	return slices.IndexFunc(items, func(item LineItem) bool { return item.ProductID == id })
}

func applyAdd(items []LineItem, ref ProductRef) []LineItem {
	next := slices.Clone(items)
	if i := indexOf(next, ref.ID); i >= 0 {
		next[i].Quantity++
		return next
	}
	return append(next, LineItem{
		ProductID: ref.ID,
		Name:      ref.Name,
		Slug:      ref.Slug,
		UnitPrice: ref.UnitPrice,
		Image:     ref.Image,
		Quantity:  1,
	})
}

func applyRemove(items []LineItem, id ProductID) []LineItem {
	return slices.DeleteFunc(slices.Clone(items), func(item LineItem) bool { return item.ProductID == id })
}

func applySetQuantity(items []LineItem, id ProductID, quantity int) []LineItem {
	if quantity <= 0 {
		return applyRemove(items, id)
	}
	next := slices.Clone(items)
	if i := indexOf(next, id); i >= 0 {
		next[i].Quantity = quantity
	}
	return next
}
