package main

import (
	"github.com/gin-gonic/gin"
	"pocketpay.backend/internal/interfaces/http/handlers"
	"pocketpay.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	accountHandler        *handlers.AccountHandler
	friendHandler         *handlers.FriendHandler
	paymentRequestHandler *handlers.PaymentRequestHandler
	transactionHandler    *handlers.TransactionHandler
	chatHandler           *handlers.ChatHandler
	aiChatHandler         *handlers.AiChatHandler
	chainHandler          *handlers.ChainHandler
	authMiddleware        gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
		}

		// Account routes (protected)
		accounts := v1.Group("/accounts")
		accounts.Use(d.authMiddleware)
		{
			accounts.GET("/me", d.accountHandler.GetProfile)
			accounts.PATCH("/me", d.accountHandler.UpdateProfile)
			accounts.POST("/me/identities", d.accountHandler.LinkIdentity)
			accounts.DELETE("/me/identities/:id", d.accountHandler.UnlinkIdentity)
		}

		// Contact routes (protected)
		contacts := v1.Group("/contacts")
		contacts.Use(d.authMiddleware)
		{
			contacts.GET("/friends", d.friendHandler.List)
			contacts.POST("/friends", d.friendHandler.Add)
			contacts.DELETE("/friends/:id", d.friendHandler.Remove)
			contacts.GET("/search", d.friendHandler.Search)
			contacts.GET("/chat", d.chatHandler.History)
			contacts.POST("/chat", d.chatHandler.Send)
		}

		// Payment request routes (protected)
		paymentRequests := v1.Group("/payment-requests")
		paymentRequests.Use(d.authMiddleware)
		{
			paymentRequests.POST("", d.paymentRequestHandler.Create)
			paymentRequests.GET("/pending", d.paymentRequestHandler.ListPending)
			paymentRequests.GET("/:id", d.paymentRequestHandler.Get)
			paymentRequests.POST("/:id/clear", d.paymentRequestHandler.Clear)
			paymentRequests.POST("/:id/reject", d.paymentRequestHandler.Reject)
		}

		// Transaction routes (protected)
		transactions := v1.Group("/transactions")
		transactions.Use(d.authMiddleware)
		{
			transactions.POST("", middleware.IdempotencyMiddleware(), d.transactionHandler.Record)
			transactions.GET("", d.transactionHandler.List)
		}

		// Assistant routes (protected)
		chat := v1.Group("/chat")
		chat.Use(d.authMiddleware)
		{
			chat.POST("", d.aiChatHandler.Chat)
			chat.GET("/sessions", d.aiChatHandler.ListSessions)
			chat.GET("/sessions/:id", d.aiChatHandler.Transcript)
		}

		// Registry routes (public)
		v1.GET("/chains", d.chainHandler.ListChains)
		v1.GET("/tokens", d.chainHandler.ListTokens)
	}
}
