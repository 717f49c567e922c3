package domain

// CarService услуга из каталога гаража
type CarService struct {
	ID          int64
	Title       string
	Description string
	PriceCents  int64
}

// Seller автосервис в каталоге продавцов
type Seller struct {
	AccountID   int64
	ServiceName string
	CompanyCode string
	City        string
	Email       string
}
