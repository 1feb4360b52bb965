// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ArticleFetcher: Retrieves article text (Wikipedia)
//   - AnswerScorer: Runs extractive QA inference on one chunk
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - HistoryStore: Q&A audit log. When nil, answers are simply not
//     recorded; answering itself is unaffected.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
