package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Cherry-CIC/Cherry-Backend/internal/domain"
)

// Repositories bundles the collection-backed stores over one database.
type Repositories struct {
	Users      *UserRepository
	Orders     *OrderRepository
	Products   *ProductRepository
	Categories *CategoryRepository
	Charities  *CharityRepository
}

func NewRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:      &UserRepository{collection: db.Collection("users")},
		Orders:     &OrderRepository{collection: db.Collection("orders")},
		Products:   &ProductRepository{collection: db.Collection("products")},
		Categories: &CategoryRepository{collection: db.Collection("categories")},
		Charities:  &CharityRepository{collection: db.Collection("charities")},
	}
}

func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", domain.ErrNotFound, id)
	}
	return oid, nil
}

type userDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirebaseUID string             `bson:"firebaseUid"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName"`
	PhotoURL    string             `bson:"photoURL,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:          d.ID.Hex(),
		FirebaseUID: d.FirebaseUID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		PhotoURL:    d.PhotoURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type UserRepository struct {
	collection *mongo.Collection
}

func (r *UserRepository) GetByFirebaseUID(ctx context.Context, firebaseUID string) (domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"firebaseUid": firebaseUID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, fmt.Errorf("%w: user %s", domain.ErrNotFound, firebaseUID)
		}
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"email":       user.Email,
			"displayName": user.DisplayName,
			"photoURL":    user.PhotoURL,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"firebaseUid": user.FirebaseUID,
			"createdAt":   now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc userDoc
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"firebaseUid": user.FirebaseUID}, update, opts).Decode(&doc)
	if err != nil {
		return domain.User{}, fmt.Errorf("upsert user: %w", err)
	}
	return doc.toDomain(), nil
}

type shippingAddressDoc struct {
	Line1      string `bson:"line1,omitempty"`
	Line2      string `bson:"line2,omitempty"`
	City       string `bson:"city,omitempty"`
	State      string `bson:"state,omitempty"`
	PostalCode string `bson:"postal_code,omitempty"`
	Country    string `bson:"country,omitempty"`
}

type shippingDoc struct {
	Address shippingAddressDoc `bson:"address"`
	Name    string             `bson:"name,omitempty"`
}

type orderDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Email       string             `bson:"email,omitempty"`
	Amount      int64              `bson:"amount"`
	ProductID   string             `bson:"productId,omitempty"`
	ProductName string             `bson:"productName,omitempty"`
	Shipping    *shippingDoc       `bson:"shipping,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d orderDoc) toDomain() domain.Order {
	order := domain.Order{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Email:       d.Email,
		Amount:      d.Amount,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		CreatedAt:   d.CreatedAt,
	}
	if d.Shipping != nil {
		order.Shipping = &domain.ShippingInfo{
			Address: domain.ShippingAddress(d.Shipping.Address),
			Name:    d.Shipping.Name,
		}
	}
	return order
}

type OrderRepository struct {
	collection *mongo.Collection
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	doc := orderDoc{
		ID:          primitive.NewObjectID(),
		UserID:      order.UserID,
		Email:       order.Email,
		Amount:      order.Amount,
		ProductID:   order.ProductID,
		ProductName: order.ProductName,
		CreatedAt:   time.Now().UTC(),
	}
	if order.Shipping != nil {
		doc.Shipping = &shippingDoc{
			Address: shippingAddressDoc(order.Shipping.Address),
			Name:    order.Shipping.Name,
		}
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description,omitempty"`
	CategoryID    string             `bson:"categoryId"`
	CharityID     string             `bson:"charityId"`
	UserID        string             `bson:"userId"`
	Quality       string             `bson:"quality"`
	Size          string             `bson:"size"`
	ProductImages []string           `bson:"product_images"`
	Donation      int                `bson:"donation"`
	Price         int64              `bson:"price"`
	Likes         int                `bson:"likes"`
	Number        int                `bson:"number"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		CharityID:     d.CharityID,
		UserID:        d.UserID,
		Quality:       d.Quality,
		Size:          d.Size,
		ProductImages: d.ProductImages,
		Donation:      d.Donation,
		Price:         d.Price,
		Likes:         d.Likes,
		Number:        d.Number,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type ProductRepository struct {
	collection *mongo.Collection
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	return r.listByFilter(ctx, bson.M{})
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (domain.Product, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.Product{}, err
	}
	var doc productDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
		}
		return domain.Product{}, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	now := time.Now().UTC()
	doc := productDoc{
		ID:            primitive.NewObjectID(),
		Name:          product.Name,
		Description:   product.Description,
		CategoryID:    product.CategoryID,
		CharityID:     product.CharityID,
		UserID:        product.UserID,
		Quality:       product.Quality,
		Size:          product.Size,
		ProductImages: product.ProductImages,
		Donation:      product.Donation,
		Price:         product.Price,
		Likes:         product.Likes,
		Number:        product.Number,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, update domain.ProductUpdate) (domain.Product, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.Product{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.CategoryID != nil {
		set["categoryId"] = *update.CategoryID
	}
	if update.CharityID != nil {
		set["charityId"] = *update.CharityID
	}
	if update.Quality != nil {
		set["quality"] = *update.Quality
	}
	if update.Size != nil {
		set["size"] = *update.Size
	}
	if update.ProductImages != nil {
		set["product_images"] = *update.ProductImages
	}
	if update.Donation != nil {
		set["donation"] = *update.Donation
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Likes != nil {
		set["likes"] = *update.Likes
	}
	if update.Number != nil {
		set["number"] = *update.Number
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc productDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
		}
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return r.listByFilter(ctx, bson.M{"categoryId": categoryID})
}

func (r *ProductRepository) ListByCharity(ctx context.Context, charityID string) ([]domain.Product, error) {
	return r.listByFilter(ctx, bson.M{"charityId": charityID})
}

func (r *ProductRepository) ListByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	return r.listByFilter(ctx, bson.M{"userId": userID})
}

func (r *ProductRepository) listByFilter(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

type categoryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d categoryDoc) toDomain() domain.Category {
	return domain.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type CategoryRepository struct {
	collection *mongo.Collection
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []domain.Category{}
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		categories = append(categories, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (domain.Category, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.Category{}, err
	}
	var doc categoryDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Category{}, fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
		}
		return domain.Category{}, fmt.Errorf("find category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	now := time.Now().UTC()
	doc := categoryDoc{
		ID:          primitive.NewObjectID(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, update domain.CategoryUpdate) (domain.Category, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.Category{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc categoryDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Category{}, fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
		}
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	}
	return nil
}

type charityDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"imageUrl"`
	Website     string             `bson:"website,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d charityDoc) toDomain() domain.Charity {
	return domain.Charity{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Website:     d.Website,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type CharityRepository struct {
	collection *mongo.Collection
}

func (r *CharityRepository) GetAll(ctx context.Context) ([]domain.Charity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list charities: %w", err)
	}
	defer cursor.Close(ctx)

	charities := []domain.Charity{}
	for cursor.Next(ctx) {
		var doc charityDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode charity: %w", err)
		}
		charities = append(charities, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate charities: %w", err)
	}
	return charities, nil
}

func (r *CharityRepository) GetByID(ctx context.Context, id string) (domain.Charity, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.Charity{}, err
	}
	var doc charityDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Charity{}, fmt.Errorf("%w: charity %s", domain.ErrNotFound, id)
		}
		return domain.Charity{}, fmt.Errorf("find charity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CharityRepository) Create(ctx context.Context, charity domain.Charity) (domain.Charity, error) {
	now := time.Now().UTC()
	doc := charityDoc{
		ID:          primitive.NewObjectID(),
		Name:        charity.Name,
		Description: charity.Description,
		ImageURL:    charity.ImageURL,
		Website:     charity.Website,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.Charity{}, fmt.Errorf("insert charity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CharityRepository) Update(ctx context.Context, id string, update domain.CharityUpdate) (domain.Charity, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return domain.Charity{}, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ImageURL != nil {
		set["imageUrl"] = *update.ImageURL
	}
	if update.Website != nil {
		set["website"] = *update.Website
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc charityDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Charity{}, fmt.Errorf("%w: charity %s", domain.ErrNotFound, id)
		}
		return domain.Charity{}, fmt.Errorf("update charity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CharityRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete charity: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: charity %s", domain.ErrNotFound, id)
	}
	return nil
}
