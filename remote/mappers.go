package remote

import "github.com/delsur-bakery/delsur-store/models"

// Explicit field-by-field mapping between wire and model structs. Every
// field survives the round trip except the local password hash, which
// never leaves the device.

// CategoryFromDTO converts a wire category to its model.
func CategoryFromDTO(dto CategoryDTO) models.Category {
	id := 0
	if dto.ID != nil {
		id = *dto.ID
	}
	return models.Category{
		ID:      id,
		Name:    dto.Name,
		Image:   dto.Image,
		Blocked: dto.Blocked,
	}
}

// CategoryToDTO converts a category model to its wire form. A zero id
// is omitted so the server assigns one.
func CategoryToDTO(c models.Category) CategoryDTO {
	dto := CategoryDTO{
		Name:    c.Name,
		Image:   c.Image,
		Blocked: c.Blocked,
	}
	if c.ID != 0 {
		id := c.ID
		dto.ID = &id
	}
	return dto
}

// ProductFromDTO converts a wire product to its model.
func ProductFromDTO(dto ProductDTO) models.Product {
	id := 0
	if dto.ID != nil {
		id = *dto.ID
	}
	return models.Product{
		ID:            id,
		CategoryID:    dto.CategoryID,
		Code:          dto.Code,
		Name:          dto.Name,
		Price:         dto.Price,
		Description:   dto.Description,
		Image:         dto.Image,
		Stock:         dto.Stock,
		CriticalStock: dto.CriticalStock,
		Blocked:       dto.Blocked,
	}
}

// ProductToDTO converts a product model to its wire form.
func ProductToDTO(p models.Product) ProductDTO {
	dto := ProductDTO{
		CategoryID:    p.CategoryID,
		Code:          p.Code,
		Name:          p.Name,
		Price:         p.Price,
		Description:   p.Description,
		Image:         p.Image,
		Stock:         p.Stock,
		CriticalStock: p.CriticalStock,
		Blocked:       p.Blocked,
	}
	if p.ID != 0 {
		id := p.ID
		dto.ID = &id
	}
	return dto
}

// CartItemFromDTO converts a wire cart line to its model.
func CartItemFromDTO(dto CartItemDTO) models.CartItem {
	return models.CartItem{
		ID:           dto.ID,
		UserID:       dto.UserID,
		ProductID:    dto.ProductID,
		ProductName:  dto.ProductName,
		ProductPrice: dto.ProductPrice,
		ProductImage: dto.ProductImage,
		Quantity:     dto.Quantity,
		Message:      dto.Message,
	}
}

// CartItemToDTO converts a cart line model to its wire form.
func CartItemToDTO(item models.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:           item.ID,
		UserID:       item.UserID,
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		ProductPrice: item.ProductPrice,
		ProductImage: item.ProductImage,
		Quantity:     item.Quantity,
		Message:      item.Message,
	}
}

// OrderFromDTO converts a wire order into its header and line models.
func OrderFromDTO(dto OrderDTO) (models.Order, []models.OrderLine) {
	order := models.Order{
		ID:                dto.ID,
		UserID:            dto.UserID,
		PlacedAt:          dto.PlacedAt,
		PreferredDelivery: dto.PreferredDelivery,
		Status:            models.OrderStatus(dto.Status),
		Total:             dto.Total,
	}
	lines := make([]models.OrderLine, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, OrderLineFromDTO(line))
	}
	return order, lines
}

// OrderLineFromDTO converts a wire order line to its model.
func OrderLineFromDTO(dto OrderLineDTO) models.OrderLine {
	return models.OrderLine{
		ID:           dto.ID,
		OrderID:      dto.OrderID,
		ProductID:    dto.ProductID,
		ProductName:  dto.ProductName,
		ProductPrice: dto.ProductPrice,
		ProductImage: dto.ProductImage,
		Quantity:     dto.Quantity,
		Message:      dto.Message,
	}
}

// OrderToDTO converts an order header and its lines to the wire form.
func OrderToDTO(order models.Order, lines []models.OrderLine) OrderDTO {
	dto := OrderDTO{
		ID:                order.ID,
		UserID:            order.UserID,
		PlacedAt:          order.PlacedAt,
		PreferredDelivery: order.PreferredDelivery,
		Status:            string(order.Status),
		Total:             order.Total,
		Lines:             make([]OrderLineDTO, 0, len(lines)),
	}
	for _, line := range lines {
		dto.Lines = append(dto.Lines, OrderLineDTO{
			ID:           line.ID,
			OrderID:      line.OrderID,
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductPrice: line.ProductPrice,
			ProductImage: line.ProductImage,
			Quantity:     line.Quantity,
			Message:      line.Message,
		})
	}
	return dto
}

// OrderLineToRequest converts a cart line into a requested order line
// for checkout, carrying the denormalized snapshot over.
func OrderLineToRequest(item models.CartItem) OrderLineRequest {
	return OrderLineRequest{
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		ProductPrice: item.ProductPrice,
		ProductImage: item.ProductImage,
		Quantity:     item.Quantity,
		Message:      item.Message,
	}
}

// UserFromDTO converts a wire user to its model. The wire record never
// carries a password, so the caller provides the locally stored hash
// to preserve (empty when none is known).
func UserFromDTO(dto UserDTO, passwordHash string) models.User {
	return models.User{
		ID:           dto.ID,
		NationalID:   dto.NationalID,
		Name:         dto.Name,
		Surname:      dto.Surname,
		Email:        dto.Email,
		BirthDate:    dto.BirthDate,
		Role:         models.UserRole(dto.Role),
		Region:       dto.Region,
		Comune:       dto.Comune,
		Address:      dto.Address,
		PasswordHash: passwordHash,
		AgeDiscount:  dto.AgeDiscount,
		PromoCode:    dto.PromoCode,
		PartnerInst:  dto.PartnerInst,
		PhotoURL:     dto.PhotoURL,
		Blocked:      dto.Blocked,
	}
}

// UserToDTO converts a user model to its wire form. The password hash
// is deliberately dropped.
func UserToDTO(u models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		NationalID:  u.NationalID,
		Name:        u.Name,
		Surname:     u.Surname,
		Email:       u.Email,
		BirthDate:   u.BirthDate,
		Role:        string(u.Role),
		Region:      u.Region,
		Comune:      u.Comune,
		Address:     u.Address,
		AgeDiscount: u.AgeDiscount,
		PromoCode:   u.PromoCode,
		PartnerInst: u.PartnerInst,
		PhotoURL:    u.PhotoURL,
		Blocked:     u.Blocked,
	}
}

// UserToPayload converts a user model to a create/update payload.
// Password is the plaintext credential on registration and nil on
// updates, where the backend keeps its own.
func UserToPayload(u models.User, password *string) UserPayload {
	payload := UserPayload{
		NationalID:  u.NationalID,
		Name:        u.Name,
		Surname:     u.Surname,
		Email:       u.Email,
		BirthDate:   u.BirthDate,
		Role:        string(u.Role),
		Region:      u.Region,
		Comune:      u.Comune,
		Address:     u.Address,
		Password:    password,
		AgeDiscount: u.AgeDiscount,
		PromoCode:   u.PromoCode,
		PartnerInst: u.PartnerInst,
		PhotoURL:    u.PhotoURL,
		Blocked:     u.Blocked,
	}
	if u.ID != 0 {
		id := u.ID
		payload.ID = &id
	}
	return payload
}
